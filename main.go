package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"procsim/api"
	"procsim/config"
	"procsim/internal/core"
	"procsim/internal/render"
	"procsim/internal/requests"
	"procsim/internal/responses"
	"procsim/internal/schedulers"
)

func main() {
	root := &cobra.Command{
		Use:           "procsim",
		Short:         "Single-CPU process scheduling simulator (FCFS, SJF, Round-Robin)",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCommand(), runCommand())

	if err := root.Execute(); err != nil {
		log.Fatalln(err)
	}
}

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the simulation HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetSchedulerConfig()
			app := fiber.New()
			api.RegisterRoutes(app, api.NewSchedulerHandlerImpl(cfg))
			log.Println("listening on port", cfg.Port)
			return app.Listen(fmt.Sprintf(":%d", cfg.Port))
		},
	}
}

func runCommand() *cobra.Command {
	var (
		algo     string
		file     string
		quantum  int
		overhead int
		svgOut   string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate a process set from a CSV or JSON file and print the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetSchedulerConfig()
			if quantum == 0 {
				quantum = cfg.RoundRobinTimeQuantum
			}
			if overhead == 0 {
				overhead = cfg.RoundRobinContextSwitchOverhead
			}

			jobs, err := loadJobs(file)
			if err != nil {
				return err
			}
			request := requests.ScheduleRequest{Jobs: jobs}
			processes, err := request.Processes()
			if err != nil {
				return err
			}

			algos := []string{"fcfs", "sjf", "rr"}
			if algo != "all" {
				algos = []string{algo}
			}

			for _, name := range algos {
				response, err := simulate(name, processes, quantum, overhead)
				if err != nil {
					return err
				}
				fmt.Println(render.Title(response.Algorithm))
				fmt.Println(render.AsciiGantt(response.Timeline))
				render.ScheduleTable(os.Stdout, response)
				fmt.Println()

				if svgOut != "" {
					path := svgPath(svgOut, name, len(algos) > 1)
					if err := os.WriteFile(path, []byte(render.SvgGantt(response.Timeline)), 0o644); err != nil {
						return err
					}
					log.Println("wrote", path)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&algo, "algo", "all", "algorithm: fcfs, sjf, rr, or all")
	cmd.Flags().StringVar(&file, "file", "", "process file (.csv or .json; anything else is parsed as pid,arrival,burst lines)")
	cmd.Flags().IntVar(&quantum, "quantum", 0, "round-robin time quantum (defaults to the configured value)")
	cmd.Flags().IntVar(&overhead, "overhead", 0, "round-robin context switch overhead")
	cmd.Flags().StringVar(&svgOut, "svg", "", "write an SVG gantt chart to this path")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func simulate(algo string, processes []core.Process, quantum, overhead int) (responses.ScheduleResponse, error) {
	var run core.Run
	var name string
	var err error

	switch algo {
	case "fcfs":
		name = "FCFS"
		run, err = schedulers.ScheduleFirstComeFirstServe(processes)
	case "sjf":
		name = "SJF (Non-Preemptive)"
		run, err = schedulers.ScheduleShortestJobFirst(processes)
	case "rr":
		name = schedulers.RoundRobinName(quantum)
		run, err = schedulers.ScheduleRoundRobin(processes, quantum, overhead)
	default:
		return responses.ScheduleResponse{}, fmt.Errorf("%w: unknown algorithm %q", core.ErrInvalidConfig, algo)
	}
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return schedulers.GenerateAnalytics(name, run)
}

func loadJobs(file string) ([]requests.Job, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(file)) {
	case ".csv":
		return requests.LoadCSV(f)
	case ".json":
		return requests.LoadJSON(f)
	default:
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, err
		}
		return requests.ParseInline(string(data))
	}
}

func svgPath(base, algo string, multi bool) string {
	if !multi {
		return base
	}
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "_" + algo + ext
}

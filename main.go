package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"cpusched/api"
	"cpusched/config"
	"cpusched/internal/core"
	"cpusched/internal/render"
	"cpusched/internal/schedulers"
)

var rootCmd = &cobra.Command{
	Use:   "cpusched",
	Short: "CPU scheduling algorithm simulator",
	Long:  "cpusched simulates classical CPU scheduling policies (FCFS, SJF, SRTF, Round-Robin, Priority) over a set of processes and reports Gantt timelines and timing statistics.",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the scheduling HTTP API",
	RunE:  runServe,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run every algorithm on a sample process set and print the results",
	Run:   runDemo,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(demoCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.GetSchedulerConfig()
	handler := api.NewSchedulerHandlerImpl(cfg)

	app := fiber.New()
	v1 := app.Group("/api").Group("/v1")
	v1.Post("/fcfs", handler.FirstComeFirstServe)
	v1.Post("/sjf", handler.ShortestJobFirst)
	v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
	v1.Post("/rr", handler.RoundRobin)
	v1.Post("/priority", handler.Priority)
	v1.Post("/all", handler.AllAlgorithms)

	log.Println("listening on port", cfg.Port)
	return app.Listen(fmt.Sprintf(":%d", cfg.Port))
}

// sampleProcesses is the demonstration workload: a small mix of arrival
// times, bursts and priorities that makes the policies diverge visibly.
func sampleProcesses() []*core.Process {
	return []*core.Process{
		core.NewProcess(1, 0, 5, 2),
		core.NewProcess(2, 1, 3, 1),
		core.NewProcess(3, 2, 8, 3),
		core.NewProcess(4, 3, 6, 2),
		core.NewProcess(5, 4, 4, 1),
	}
}

func runDemo(cmd *cobra.Command, args []string) {
	cfg := config.GetSchedulerConfig()
	processes := sampleProcesses()

	all := []schedulers.Scheduler{
		schedulers.FirstComeFirstServe{},
		schedulers.ShortestJobFirst{},
		schedulers.ShortestRemainingTimeFirst{},
		schedulers.RoundRobin{TimeQuantum: cfg.RoundRobinTimeQuantum},
		schedulers.Priority{},
	}

	comparison := make([]render.ComparisonRow, 0, len(all))
	for _, scheduler := range all {
		result := scheduler.Schedule(processes)
		render.PrintGantt(os.Stdout, scheduler.Name(), result.Gantt)
		render.PrintStatistics(os.Stdout, scheduler.Name(), result)
		comparison = append(comparison, render.ComparisonRow{
			Algorithm: scheduler.Name(),
			Metrics:   result.Metrics,
		})
	}
	render.PrintComparison(os.Stdout, comparison)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalln(err)
	}
}

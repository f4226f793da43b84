package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/groupguard/groupguard/ai"
	"github.com/groupguard/groupguard/audit"
	"github.com/groupguard/groupguard/config"
	"github.com/groupguard/groupguard/enforce"
	"github.com/groupguard/groupguard/logging"
	"github.com/groupguard/groupguard/processor"
	"github.com/groupguard/groupguard/queue"
	"github.com/groupguard/groupguard/store"
	"github.com/groupguard/groupguard/tasks"
	"github.com/groupguard/groupguard/telegram"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Println("Not loading .env file:", err)
	}

	instanceConfig, err := config.NewInstanceConfig()
	if err != nil {
		log.Fatal(err)
	}

	data, err := store.Load(instanceConfig.DataFile)
	if err != nil {
		log.Fatal(err)
	}

	analyzer, err := ai.NewAnalyzer(instanceConfig)
	if err != nil {
		log.Fatal(err)
	}

	auditQueue, err := audit.NewQueue(instanceConfig.AuditPoolSize, instanceConfig.AuditWebhookUrl)
	if err != nil {
		log.Fatal(err)
	}

	client, err := telegram.NewClient(instanceConfig.TelegramBotToken)
	if err != nil {
		log.Fatal(err)
	}

	engine := enforce.NewEngine(client, data, auditQueue)
	proc := processor.NewProcessor(data, analyzer, engine, instanceConfig.ExemptSenders)

	pool, err := queue.NewPool(instanceConfig.ProcessingPoolSize, proc)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Release()

	bot := telegram.NewBot(client, pool, processor.NewCommands(data))

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsServer := &http.Server{Addr: instanceConfig.MetricsBind, Handler: metricsMux}
	go func() {
		err := metricsServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	scheduler, err := gocron.NewScheduler(gocron.WithLogger(&logging.CronLogger{}))
	if err != nil {
		log.Fatal(err)
	}
	scheduler.Start()
	if _, err = scheduler.NewJob(
		gocron.DurationJob(time.Duration(instanceConfig.BackupIntervalMinutes)*time.Minute),
		gocron.NewTask(tasks.BackupDataFile, instanceConfig.DataFile),
	); err != nil {
		log.Fatal(err)
	}
	if _, err = scheduler.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(tasks.ReportStats, data),
	); err != nil {
		log.Fatal(err)
	}

	runCtx, cancelRun := context.WithCancel(context.Background())
	go bot.Run(runCtx)

	// Wait for a stop signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer close(stop)
	<-stop

	log.Println("Stopping...")
	cancelRun()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 4*time.Second)
	defer cancelShutdown()
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Println("Error shutting down metrics server:", err)
	}
	if err := scheduler.Shutdown(); err != nil {
		log.Println("Error shutting down scheduler:", err)
	}
	log.Println("Stopped")
}

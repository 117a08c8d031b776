package cli

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"study-planner/internal/api"
	"study-planner/internal/app"
	"study-planner/internal/bot"
	"study-planner/internal/service"
)

func newServeCmd(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the Telegram bot, HTTP API and reminder loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(a *app.App) error {
				return serve(cmd.Context(), a)
			})
		},
	}
}

func serve(ctx context.Context, a *app.App) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var telegramBot *bot.Bot
	if a.Config.TelegramToken != "" {
		var err error
		telegramBot, err = bot.New(a.Config.TelegramToken, a)
		if err != nil {
			return err
		}
		a.Reminders.SetNotifier(telegramBot)
	} else {
		log.Println("[warn] TELEGRAM_TOKEN is empty, bot and reminders delivery disabled")
	}

	scheduler := service.NewSchedulerService(a.Schedule.Location())
	if _, err := scheduler.ScheduleInterval(a.Config.ReminderInterval, func() {
		jobCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		n, err := a.Reminders.Check(jobCtx, time.Now())
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("[warn] reminders: %v", err)
			return
		}
		if n > 0 {
			log.Printf("[info] %d reminders sent", n)
		}
	}); err != nil {
		return err
	}
	scheduler.Start()
	defer scheduler.Stop()

	var (
		wg      sync.WaitGroup
		errOnce sync.Once
		runErr  error
	)
	fail := func(err error) {
		if err == nil || errors.Is(err, context.Canceled) {
			return
		}
		errOnce.Do(func() { runErr = err })
		cancel()
	}

	if telegramBot != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fail(telegramBot.Start(ctx))
		}()
	}
	if a.Config.HTTPAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fail(api.Serve(ctx, a.Config.HTTPAddr, api.NewHandler(a)))
		}()
	}

	log.Println("Study planner started.")
	<-ctx.Done()
	wg.Wait()
	log.Println("Shutdown complete.")
	return runErr
}

package services

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/nashaat90ahmed-commits/True-love-app-5/config"
)

// StartSchedulers wires the recurring jobs: the reputation decay pass, the
// daily retention cleanup and the weekly super-hour broadcast. Each tick
// re-evaluates current store state, so a failed run needs no retry of its
// own — the next tick covers it.
func StartSchedulers(
	cfg *config.Config,
	decay *DecayService,
	cleanup *CleanupService,
	broadcast *BroadcastService,
) (gocron.Scheduler, error) {
	loc, err := time.LoadLocation(cfg.Broadcast.Timezone)
	if err != nil {
		return nil, err
	}

	sched, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(cfg.Decay.Interval),
		gocron.NewTask(func() {
			updated, err := decay.RunDecayPass(context.Background(), time.Now().UTC())
			if err != nil {
				log.Printf("❌ Decay pass failed: %v", err)
				return
			}
			log.Printf("[Scheduler] Decay pass updated %d users", updated)
		}),
	)
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.CronJob(cfg.Cleanup.Cron, false),
		gocron.NewTask(func() {
			deleted, err := cleanup.Run(context.Background(), time.Now().UTC())
			if err != nil {
				log.Printf("❌ Cleanup run failed after %d deletes: %v", deleted, err)
				return
			}
			log.Printf("[Scheduler] Cleanup removed %d documents", deleted)
		}),
	)
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.CronJob(cfg.Broadcast.Cron, false),
		gocron.NewTask(func() {
			sent, err := broadcast.SendSuperHour(context.Background())
			if err != nil {
				log.Printf("❌ Super hour broadcast failed: %v", err)
				return
			}
			log.Printf("[Scheduler] Super hour reached %d users", sent)
		}),
	)
	if err != nil {
		return nil, err
	}

	sched.Start()
	return sched, nil
}

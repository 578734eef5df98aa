package helper

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var rescanScheduler gocron.Scheduler

// StartBackgroundRescanScheduler reruns the background-directory import pass
// every hour so images dropped into the folder while the kiosk is running
// show up without a restart.
func StartBackgroundRescanScheduler(rescan func()) {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.Local),
	)
	if err != nil {
		log.Fatal(err)
	}

	rescanScheduler = s

	_, err = s.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(rescan),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Background rescan scheduler started (hourly)")
}

func StopBackgroundRescanScheduler() {
	if rescanScheduler != nil {
		_ = rescanScheduler.Shutdown()
	}
}

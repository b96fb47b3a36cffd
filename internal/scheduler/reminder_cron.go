package cron

import (
	"github.com/Ishan-giri-05293/private-memory-vault/internal/jobs"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func StartReminderCronJobs(notifier *jobs.TargetDateNotifier) {
	c := cron.New()

	// Target date approaching
	c.AddFunc("@hourly", func() {
		if err := notifier.RunScan(); err != nil {
			logrus.WithError(err).Error("Target date scan failed")
		}
	})

	c.Start()
}

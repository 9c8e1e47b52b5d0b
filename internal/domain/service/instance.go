package service

// Instance exposes the domain services to the handlers and the CLI.
type Instance struct {
	Planning     *planner
	Subscription *subscriptionService
	Absence      *absenceService
	Hours        *hoursService
	Visits       *visitService
	Scheduler    *scheduler
}

func NewInstance(opts Options) *Instance {
	opts.setDefaults()

	planning := newPlanner(opts)
	sched := newScheduler(opts, planning)
	subscription := newSubscription(opts, planning, sched)

	return &Instance{
		Planning:     planning,
		Subscription: subscription,
		Absence:      newAbsence(opts),
		Hours:        newHours(opts),
		Visits:       newVisit(opts),
		Scheduler:    sched,
	}
}

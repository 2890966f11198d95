package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the application counters exposed on /metrics.
type Metrics struct {
	PostsCreated       prometheus.Counter
	FollowRequests     prometheus.Counter
	UnfollowRequests   prometheus.Counter
	FollowerEmailsSent prometheus.Counter
}

// InitMetrics creates and registers the counters.
func InitMetrics() *Metrics {
	m := &Metrics{
		PostsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "microposts_created_total",
			Help: "Total number of microposts created",
		}),
		FollowRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "follows_total",
			Help: "Total number of successful follow requests",
		}),
		UnfollowRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "unfollows_total",
			Help: "Total number of successful unfollow requests",
		}),
		FollowerEmailsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "follower_notifications_total",
			Help: "Total number of new-follower notifications emitted",
		}),
	}

	prometheus.MustRegister(m.PostsCreated)
	prometheus.MustRegister(m.FollowRequests)
	prometheus.MustRegister(m.UnfollowRequests)
	prometheus.MustRegister(m.FollowerEmailsSent)

	return m
}

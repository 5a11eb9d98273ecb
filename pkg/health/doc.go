// Package health serves liveness and readiness checks for the preview server.
//
// [LivenessHandler] always answers OK while the process runs. [ReadinessHandler]
// runs a set of named [Checks] concurrently under a shared timeout and answers 503
// when any of them fails; the server registers the locale preset catalog here.
//
//	r.Get("/healthz", health.LivenessHandler())
//	r.Get("/readyz", health.ReadinessHandler(health.Checks{
//	    "locale_presets": func(context.Context) error { return locale.Ready() },
//	}, health.WithTimeout(2*time.Second), health.WithLogger(log)))
//
// Responses are plain text ("OK" or "Service Unavailable") unless the client asks
// for JSON with an Accept: application/json header or ?format=json:
//
//	{"status":"unhealthy","checks":{"locale_presets":{"status":"unhealthy","error":"..."}}}
//
// A check that is still running when the timeout expires is reported with
// [ErrCheckTimeout].
package health

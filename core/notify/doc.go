// Package notify implements the user-facing notification sink as a pub/sub
// fan-out over the broadcast package.
//
// Center is the concrete Notifier the session guard emits through: every
// Info/Warning/Error call becomes a Notification broadcast to subscribers
// and mirrored into the structured log. Presenting layers (SSE handlers,
// websocket pushers) subscribe and render; tests subscribe and assert.
//
//	center := notify.NewCenter(notify.WithLogger(log))
//	defer center.Close()
//
//	sub := center.Subscribe(ctx)
//	go func() {
//		for msg := range sub.Receive(ctx) {
//			render(msg.Data) // msg.Data is a Notification
//		}
//	}()
//
//	center.Warning("You will be signed out soon.", 5*time.Minute)
package notify

// Package broadcast provides a generic in-memory pub/sub fan-out with
// non-blocking delivery.
//
// The package defines two interfaces, Broadcaster and Subscriber, so callers
// can swap the in-memory implementation for a backed one (Redis, NATS, ...)
// without touching consuming code. MemoryBroadcaster delivers each message to
// every active subscriber's buffered channel; a full buffer drops the message
// for that subscriber so a slow consumer can never stall the broadcaster.
//
// Basic usage:
//
//	broadcaster := broadcast.NewMemoryBroadcaster[string](100)
//	defer broadcaster.Close()
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	subscriber := broadcaster.Subscribe(ctx)
//	go func() {
//		for msg := range subscriber.Receive(ctx) {
//			fmt.Println(msg.Data)
//		}
//	}()
//
//	broadcaster.Broadcast(ctx, broadcast.Message[string]{Data: "hello"})
//
// Subscriptions are released when their context is cancelled or when Close
// is called on either side; the Receive channel is closed on release.
package broadcast

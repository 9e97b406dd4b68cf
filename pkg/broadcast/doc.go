// Package broadcast provides a generic, non-blocking fan-out of messages to
// in-process subscribers.
//
// The notification center publishes container changes through a Memory
// broadcaster; renderers and host adapters subscribe to keep their view of
// the container in sync without reaching into the center's state.
//
//	b := broadcast.NewMemory[Event](16)
//	sub := b.Subscribe(ctx)
//	go func() {
//		for msg := range sub.Receive() {
//			handle(msg.Data)
//		}
//	}()
//	_ = b.Broadcast(ctx, broadcast.Message[Event]{Data: ev})
//
// A subscriber whose buffer is full misses messages rather than stalling the
// sender; Dropped reports how many it missed.
package broadcast

// Package realtime feeds websocket traffic into the session guard.
//
// A Pump treats every inbound message as user activity and reports
// connection errors through the guard's ambient error path, where the
// default filter classifies transport drops as ignorable. Realtime
// connections come and go with network conditions; only explicit
// authentication failures may end a session.
//
//	pump := realtime.New(g, realtime.WithPingInterval(30*time.Second))
//	mux.Handle("/ws", pump.Handler())
//
// The pump sends keepalive pings and enforces a pong deadline so dead
// connections are detected and released promptly.
package realtime

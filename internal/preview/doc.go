// Package preview broadcasts applied article configurations to browsers.
//
// The reader's apply consumer publishes every applied configuration to a Hub.
// Browsers connect to the hub's WebSocket endpoint and restyle a preview page
// as configurations arrive. A newly connected browser immediately receives
// the last applied configuration, if any.
//
// # Endpoints
//
//   - GET /        preview page
//   - GET /ws      WebSocket stream of {"type":"apply","config":{...}} messages
//   - GET /config  last applied configuration as JSON (204 before the first apply)
//
// # Discovery
//
// The hub can be announced over mDNS as a _readerstyle._tcp service so that
// other machines on the network can find it:
//
//	shutdown, err := preview.Advertise("readerstyle", port, nil)
//	if err != nil {
//	    return err
//	}
//	defer shutdown()
//
// Discover browses for announced hubs.
//
// # Thread Safety
//
// Hub methods are safe for concurrent use. Publish never blocks on a slow
// client; clients whose send buffer is full are disconnected.
package preview

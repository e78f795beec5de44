package headers

// Headers holds response header fields. Keys are case-sensitive and
// unique, exactly as they go on the wire.
type Headers map[string]string

const serverName = "CrudeServer"

// Default returns the base headers every response starts from. A fresh
// map each call, so no handler can mutate state shared across requests.
func Default() Headers {
	return Headers{
		"Server":       serverName,
		"Content-Type": "text/html",
	}
}

// Merge lays extra over base without touching either. Extra wins on a
// key collision.
func Merge(base, extra Headers) Headers {
	merged := make(Headers, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

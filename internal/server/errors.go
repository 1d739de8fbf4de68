package server

import "errors"

// errNoServersAreCreated is returned by NewServer when no transport address
// is configured and there is therefore nothing to run.
var errNoServersAreCreated = errors.New("no servers are created")

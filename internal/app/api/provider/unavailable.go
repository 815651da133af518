package provider

import "context"

// unavailable stands in for a capability that could not be configured.
// Every Send returns err without any outbound call.
type unavailable struct {
	name string
	err  error
}

// Unavailable returns a Capability named name that always fails with err
func Unavailable(name string, err error) Capability {
	return &unavailable{name: name, err: err}
}

func (u *unavailable) Send(ctx context.Context, request *Request) (*Reply, error) {
	return nil, u.err
}

func (u *unavailable) Name() string {
	return u.name
}

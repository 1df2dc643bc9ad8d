package pipeline

import "context"

type Result struct {
	IsAllowed  bool
	Reason     string
	FilterName string
}

type Filter interface {
	Name() string
	Process(ctx context.Context, payload Payload) (*Result, error)
}

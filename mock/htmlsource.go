package mock

import "github.com/fwojciec/linkcard"

var _ linkcard.HTMLSource = (*HTMLSource)(nil)

// HTMLSource is a mock implementation of linkcard.HTMLSource.
type HTMLSource struct {
	ReadFn func(fragment string) (*linkcard.HTMLFacts, error)
}

func (s *HTMLSource) Read(fragment string) (*linkcard.HTMLFacts, error) {
	return s.ReadFn(fragment)
}

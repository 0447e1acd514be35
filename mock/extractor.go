package mock

import "github.com/fwojciec/linkcard"

var _ linkcard.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of linkcard.Extractor.
type Extractor struct {
	ExtractFn func(content string) (*linkcard.Preview, error)
}

func (e *Extractor) Extract(content string) (*linkcard.Preview, error) {
	return e.ExtractFn(content)
}

package pipeline

import (
	"errors"

	"github.com/jonathan/hiring-agent/internal/embedding"
	"github.com/jonathan/hiring-agent/internal/scoring"
)

func isEmbeddingError(err error) bool {
	var embedErr *embedding.EmbeddingError
	return errors.As(err, &embedErr)
}

func isDomainError(err error) bool {
	var domainErr *scoring.DomainError
	return errors.As(err, &domainErr)
}

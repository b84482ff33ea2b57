package postgres_test

import (
	"ordertracker/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
)

func mustID(s suite.TestingSuite, v int64) kernel.ID {
	id, err := kernel.NewID(v)
	if err != nil {
		s.T().Fatal(err)
	}
	return id
}

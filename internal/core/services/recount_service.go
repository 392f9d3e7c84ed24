package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/crackd/api/internal/core/ports"
)

type recountService struct {
	startupRepo ports.StartupRepository
	counterRepo ports.CounterRepository
}

func NewRecountService(startupRepo ports.StartupRepository, counterRepo ports.CounterRepository) ports.RecountService {
	return &recountService{
		startupRepo: startupRepo,
		counterRepo: counterRepo,
	}
}

// RecountAll rebuilds every startup's materialized cracked/cooked counters
// from the votes table. Meant as an offline repair job; the vote path keeps
// counters consistent on its own.
func (s *recountService) RecountAll(ctx context.Context) error {
	startups, err := s.startupRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch all startups: %w", err)
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(startups))

	for _, startup := range startups {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			if err := s.counterRepo.RecountVotes(ctx, name); err != nil {
				errChan <- fmt.Errorf("failed to recount startup %s: %w", name, err)
			}
		}(startup.Name)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return err
		}
	}

	return nil
}

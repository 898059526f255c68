package social

import "context"

// Overview returns the counters shown on the stats page.
func (s *Service) Overview(ctx context.Context) (*Stats, error) {
	var out Stats
	if err := s.get(ctx, "/api/stats/overview", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

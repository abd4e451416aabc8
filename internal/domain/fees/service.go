package fees

import "context"

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

type Statement struct {
	Items   []Fee   `json:"items"`
	Summary Summary `json:"summary"`
}

func (s *Service) StatementForStudent(ctx context.Context, studentID int64) (Statement, error) {
	items, err := s.Store.ListForStudent(ctx, studentID)
	if err != nil {
		return Statement{}, err
	}
	return Statement{Items: items, Summary: Summarize(items)}, nil
}

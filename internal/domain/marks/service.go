package marks

import "context"

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

type StudentReport struct {
	Rows        []ReportRow `json:"rows"`
	AverageCGPA float64     `json:"averageCgpa"`
}

func (s *Service) ReportForStudent(ctx context.Context, studentID int64) (StudentReport, error) {
	records, err := s.Store.ListForStudent(ctx, studentID)
	if err != nil {
		return StudentReport{}, err
	}
	return StudentReport{
		Rows:        BuildReport(records),
		AverageCGPA: AverageCGPA(records),
	}, nil
}

type CourseOverview struct {
	Rows     []ReportRow      `json:"rows"`
	Averages InternalAverages `json:"averages"`
}

func (s *Service) OverviewForCourse(ctx context.Context, courseID int64) (CourseOverview, error) {
	records, err := s.Store.ListForCourse(ctx, courseID)
	if err != nil {
		return CourseOverview{}, err
	}
	return CourseOverview{
		Rows:     BuildReport(records),
		Averages: ClassInternalAverages(records),
	}, nil
}

func (s *Service) Save(ctx context.Context, rec Record) error {
	return s.Store.Upsert(ctx, rec)
}

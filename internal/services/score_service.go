package services

import (
	"context"
	"strings"

	"github.com/omnipdr/omnipdr/internal/catalog"
	apperrors "github.com/omnipdr/omnipdr/internal/errors"
	"github.com/omnipdr/omnipdr/internal/logger"
	"github.com/omnipdr/omnipdr/internal/models"
	"github.com/omnipdr/omnipdr/internal/ranking"
	"github.com/omnipdr/omnipdr/internal/repository"
	"github.com/omnipdr/omnipdr/internal/scoring"
)

// ScoreService answers score, rank and program placement questions. It is
// stateless apart from the configured tables and catalog.
type ScoreService struct {
	students  repository.StudentRepository
	calc      *scoring.Calculator
	catalog   *catalog.Catalog
	tolerance float64
}

func NewScoreService(students repository.StudentRepository, calc *scoring.Calculator, cat *catalog.Catalog, tolerance float64) *ScoreService {
	if calc == nil {
		calc = scoring.NewCalculator(nil)
	}
	if cat == nil {
		cat = catalog.New(nil)
	}
	return &ScoreService{students: students, calc: calc, catalog: cat, tolerance: tolerance}
}

// YKSScoreRequest carries the nets of one full YKS mock exam.
type YKSScoreRequest struct {
	TYTNets map[string]float64 `json:"tytNets"`
	AYTNets map[string]float64 `json:"aytNets"`
	Track   string             `json:"track"`
	OBP     float64            `json:"obp"`
}

func (s *ScoreService) YKSScore(ctx context.Context, req YKSScoreRequest) (*scoring.YKSResult, error) {
	log := logger.FromContext(ctx).WithPrefix("score_service")

	track, err := parseScoreTrack(req.Track)
	if err != nil {
		return nil, err
	}
	if req.OBP < 0 || req.OBP > 100 {
		return nil, apperrors.NewValidationError("obp", "must be between 0 and 100")
	}
	if err := validateNets(req.TYTNets, "tytNets"); err != nil {
		return nil, err
	}
	if err := validateNets(req.AYTNets, "aytNets"); err != nil {
		return nil, err
	}

	result := s.calc.YKS(req.TYTNets, req.AYTNets, track, req.OBP)
	log.Debug("computed YKS score: track=%s, placement=%.2f, rank=%d", track, result.PlacementScore, result.EstimatedRank)
	return &result, nil
}

// LGSScoreRequest carries the nets of one LGS mock exam. When TargetRank is
// set the response includes the per-subject net gap needed to reach it.
type LGSScoreRequest struct {
	Nets       map[string]float64 `json:"nets"`
	TargetRank int                `json:"targetRank,omitempty"`
}

// LGSScoreResult is an LGS score with the optional target gap attached.
type LGSScoreResult struct {
	scoring.LGSResult
	TargetNetGap map[string]float64 `json:"targetNetGap,omitempty"`
}

func (s *ScoreService) LGSScore(ctx context.Context, req LGSScoreRequest) (*LGSScoreResult, error) {
	log := logger.FromContext(ctx).WithPrefix("score_service")

	if err := validateNets(req.Nets, "nets"); err != nil {
		return nil, err
	}
	if req.TargetRank < 0 {
		return nil, apperrors.NewValidationError("targetRank", "must not be negative")
	}

	result := LGSScoreResult{LGSResult: s.calc.LGSScore(req.Nets)}
	if req.TargetRank > 0 {
		result.TargetNetGap = s.calc.TargetNetGap(req.Nets, req.TargetRank)
	}
	log.Debug("computed LGS score: score=%.2f, rank=%d", result.Score, result.EstimatedRank)
	return &result, nil
}

// RequiredScore returns the minimum score matching the given rank in the
// named rank table ("TYT", "SAY", "EA", "SOZ" or "LGS").
func (s *ScoreService) RequiredScore(ctx context.Context, tableKey string, rank int) (float64, error) {
	if rank <= 0 {
		return 0, apperrors.NewValidationError("rank", "must be positive")
	}
	table := s.calc.Tables().RankTable(strings.ToUpper(tableKey))
	if table == nil {
		return 0, apperrors.NewValidationError("table", "unknown rank table: "+tableKey)
	}
	return ranking.ScoreForRank(rank, table), nil
}

// SearchPrograms filters the university catalog.
func (s *ScoreService) SearchPrograms(ctx context.Context, f catalog.Filter) []catalog.Program {
	return s.catalog.Search(f)
}

// StudentRecommendation is the catalog recommendation for a student,
// annotated with the score it was derived from.
type StudentRecommendation struct {
	Score     float64                `json:"score"`
	ScoreType string                 `json:"scoreType"`
	Buckets   catalog.Recommendation `json:"buckets"`
}

// RecommendForStudent derives a placement score from the student's latest
// exam and matches it against the catalog. YKS students get the score track
// and diploma score passed in; LGS students need neither.
func (s *ScoreService) RecommendForStudent(ctx context.Context, studentID, track string, obp float64) (*StudentRecommendation, error) {
	log := logger.FromContext(ctx).WithPrefix("score_service")

	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if student == nil {
		return nil, apperrors.NewNotFoundError("student", studentID)
	}
	latest := student.LatestExam()
	if latest == nil {
		return nil, apperrors.NewValidationError("student", "has no exam records to derive a score from")
	}

	var rec StudentRecommendation
	switch student.Track {
	case models.TrackLGS:
		result := s.calc.LGSScore(latest.SubjectNets)
		rec = StudentRecommendation{Score: result.Score, ScoreType: "LGS"}
	default:
		scoreTrack, err := parseScoreTrack(track)
		if err != nil {
			return nil, err
		}
		if obp < 0 || obp > 100 {
			return nil, apperrors.NewValidationError("obp", "must be between 0 and 100")
		}
		tytNets, aytNets := s.splitNets(latest.SubjectNets)
		result := s.calc.YKS(tytNets, aytNets, scoreTrack, obp)
		rec = StudentRecommendation{Score: result.PlacementScore, ScoreType: string(scoreTrack)}
	}

	rec.Buckets = s.catalog.Recommend(rec.Score, rec.ScoreType, s.tolerance)
	log.Debug("recommended programs: student=%s, score=%.2f, type=%s", studentID, rec.Score, rec.ScoreType)
	return &rec, nil
}

// splitNets partitions one combined net map into TYT and AYT maps based on
// the configured subject tables. Subjects present in both (Fizik, Kimya,
// Biyoloji) are treated as TYT here since reports store a single net.
func (s *ScoreService) splitNets(nets map[string]float64) (tyt, ayt map[string]float64) {
	tyt = map[string]float64{}
	ayt = map[string]float64{}
	tables := s.calc.Tables()
	for subject, net := range nets {
		if _, ok := tables.TYT[subject]; ok {
			tyt[subject] = net
			continue
		}
		if _, ok := tables.AYTQuestions[subject]; ok {
			ayt[subject] = net
		}
	}
	return tyt, ayt
}

func parseScoreTrack(raw string) (scoring.ScoreTrack, error) {
	switch scoring.ScoreTrack(strings.ToUpper(strings.TrimSpace(raw))) {
	case scoring.TrackSAY, "":
		return scoring.TrackSAY, nil
	case scoring.TrackEA:
		return scoring.TrackEA, nil
	case scoring.TrackSOZ:
		return scoring.TrackSOZ, nil
	default:
		return "", apperrors.NewValidationError("track", "must be SAY, EA or SOZ")
	}
}

func validateNets(nets map[string]float64, field string) error {
	if len(nets) == 0 {
		return apperrors.NewValidationError(field, "must not be empty")
	}
	for subject, net := range nets {
		if net < 0 {
			return apperrors.NewValidationError(field, "net for "+subject+" must not be negative")
		}
	}
	return nil
}

package scoring

import "github.com/omnipdr/omnipdr/internal/ranking"

// ScoreTrack selects an AYT coefficient set and its rank table.
type ScoreTrack string

const (
	TrackSAY ScoreTrack = "SAY" // quantitative
	TrackEA  ScoreTrack = "EA"  // mixed
	TrackSOZ ScoreTrack = "SOZ" // verbal
)

// SubjectSpec describes a TYT subject: how many questions it has and its
// score coefficient.
type SubjectSpec struct {
	Questions   int     `json:"questions"`
	Coefficient float64 `json:"coefficient"`
}

// WeightedSubject describes an LGS subject: question count and its weight in
// the combined transition score (core subjects count four times).
type WeightedSubject struct {
	Questions int `json:"questions"`
	Weight    int `json:"weight"`
}

// Tables is the swappable configuration behind all score formulas: subject
// specs, coefficients, and the empirical score-to-rank tables per track.
// The calculator never hardcodes any of these values.
type Tables struct {
	Baseline float64
	Maximum  float64

	TYT          map[string]SubjectSpec
	AYT          map[ScoreTrack]map[string]float64
	AYTQuestions map[string]int
	LGS          map[string]WeightedSubject

	// Ranks is keyed by "TYT", "SAY", "EA", "SOZ" and "LGS".
	Ranks map[string]ranking.Table
}

// RankTable returns the rank table for a key, or nil when absent.
func (t *Tables) RankTable(key string) ranking.Table {
	return t.Ranks[key]
}

// DefaultTables returns the built-in 2024-based configuration.
func DefaultTables() *Tables {
	return &Tables{
		Baseline: 100.0,
		Maximum:  500.0,

		TYT: map[string]SubjectSpec{
			"Türkçe":          {Questions: 40, Coefficient: 3.3},
			"Temel Matematik": {Questions: 40, Coefficient: 3.3},
			"Tarih":           {Questions: 5, Coefficient: 3.4},
			"Coğrafya":        {Questions: 5, Coefficient: 3.4},
			"Felsefe":         {Questions: 5, Coefficient: 3.4},
			"Din Kültürü":     {Questions: 5, Coefficient: 3.4},
			"Fizik":           {Questions: 7, Coefficient: 3.4},
			"Kimya":           {Questions: 7, Coefficient: 3.4},
			"Biyoloji":        {Questions: 6, Coefficient: 3.4},
		},

		AYT: map[ScoreTrack]map[string]float64{
			TrackSAY: {
				"Matematik": 3.0, "Fizik": 2.85, "Kimya": 3.07, "Biyoloji": 3.07,
				"Edebiyat": 0.0, "Tarih-1": 0.0, "Coğrafya-1": 0.0,
				"Tarih-2": 0.0, "Coğrafya-2": 0.0, "Felsefe": 0.0, "Din": 0.0,
			},
			TrackEA: {
				"Matematik": 3.0, "Fizik": 0.0, "Kimya": 0.0, "Biyoloji": 0.0,
				"Edebiyat": 3.0, "Tarih-1": 2.8, "Coğrafya-1": 3.33,
				"Tarih-2": 0.0, "Coğrafya-2": 0.0, "Felsefe": 0.0, "Din": 0.0,
			},
			TrackSOZ: {
				"Matematik": 0.0, "Fizik": 0.0, "Kimya": 0.0, "Biyoloji": 0.0,
				"Edebiyat": 3.0, "Tarih-1": 2.8, "Coğrafya-1": 3.33,
				"Tarih-2": 2.91, "Coğrafya-2": 2.91, "Felsefe": 2.5, "Din": 3.33,
			},
		},

		AYTQuestions: map[string]int{
			"Matematik": 40, "Fizik": 14, "Kimya": 13, "Biyoloji": 13,
			"Edebiyat": 24, "Tarih-1": 10, "Coğrafya-1": 6,
			"Tarih-2": 11, "Coğrafya-2": 11, "Felsefe": 12, "Din": 6,
		},

		LGS: map[string]WeightedSubject{
			"Türkçe":              {Questions: 20, Weight: 4},
			"Matematik":           {Questions: 20, Weight: 4},
			"Fen Bilimleri":       {Questions: 20, Weight: 4},
			"T.C. İnkılap Tarihi": {Questions: 10, Weight: 1},
			"Din Kültürü":         {Questions: 10, Weight: 1},
			"İngilizce":           {Questions: 10, Weight: 1},
		},

		Ranks: map[string]ranking.Table{
			"TYT": {
				{Score: 500, Rank: 1}, {Score: 490, Rank: 100}, {Score: 480, Rank: 500}, {Score: 470, Rank: 1500}, {Score: 460, Rank: 3000},
				{Score: 450, Rank: 5500}, {Score: 440, Rank: 9000}, {Score: 430, Rank: 14000}, {Score: 420, Rank: 20000}, {Score: 410, Rank: 28000},
				{Score: 400, Rank: 38000}, {Score: 390, Rank: 50000}, {Score: 380, Rank: 65000}, {Score: 370, Rank: 82000}, {Score: 360, Rank: 102000},
				{Score: 350, Rank: 125000}, {Score: 340, Rank: 152000}, {Score: 330, Rank: 183000}, {Score: 320, Rank: 218000}, {Score: 310, Rank: 258000},
				{Score: 300, Rank: 303000}, {Score: 290, Rank: 353000}, {Score: 280, Rank: 410000}, {Score: 270, Rank: 473000}, {Score: 260, Rank: 543000},
				{Score: 250, Rank: 620000}, {Score: 240, Rank: 705000}, {Score: 230, Rank: 798000}, {Score: 220, Rank: 900000}, {Score: 210, Rank: 1012000},
				{Score: 200, Rank: 1135000}, {Score: 150, Rank: 2000000}, {Score: 100, Rank: 3500000},
			},
			"SAY": {
				{Score: 500, Rank: 1}, {Score: 490, Rank: 50}, {Score: 480, Rank: 200}, {Score: 470, Rank: 600}, {Score: 460, Rank: 1500},
				{Score: 450, Rank: 3000}, {Score: 440, Rank: 5500}, {Score: 430, Rank: 9000}, {Score: 420, Rank: 14000}, {Score: 410, Rank: 20000},
				{Score: 400, Rank: 28000}, {Score: 390, Rank: 38000}, {Score: 380, Rank: 50000}, {Score: 370, Rank: 65000}, {Score: 360, Rank: 82000},
				{Score: 350, Rank: 102000}, {Score: 340, Rank: 125000}, {Score: 330, Rank: 152000}, {Score: 320, Rank: 183000}, {Score: 310, Rank: 218000},
				{Score: 300, Rank: 260000}, {Score: 280, Rank: 360000}, {Score: 260, Rank: 500000}, {Score: 240, Rank: 680000}, {Score: 200, Rank: 1200000},
			},
			"EA": {
				{Score: 500, Rank: 1}, {Score: 490, Rank: 30}, {Score: 480, Rank: 150}, {Score: 470, Rank: 500}, {Score: 460, Rank: 1200},
				{Score: 450, Rank: 2500}, {Score: 440, Rank: 4500}, {Score: 430, Rank: 7500}, {Score: 420, Rank: 12000}, {Score: 410, Rank: 18000},
				{Score: 400, Rank: 25000}, {Score: 390, Rank: 34000}, {Score: 380, Rank: 45000}, {Score: 370, Rank: 58000}, {Score: 360, Rank: 73000},
				{Score: 350, Rank: 90000}, {Score: 340, Rank: 110000}, {Score: 330, Rank: 135000}, {Score: 320, Rank: 163000}, {Score: 310, Rank: 195000},
				{Score: 300, Rank: 230000}, {Score: 280, Rank: 320000}, {Score: 260, Rank: 440000}, {Score: 240, Rank: 600000}, {Score: 200, Rank: 1000000},
			},
			"SOZ": {
				{Score: 500, Rank: 1}, {Score: 490, Rank: 20}, {Score: 480, Rank: 100}, {Score: 470, Rank: 350}, {Score: 460, Rank: 900},
				{Score: 450, Rank: 2000}, {Score: 440, Rank: 3800}, {Score: 430, Rank: 6500}, {Score: 420, Rank: 10000}, {Score: 410, Rank: 15000},
				{Score: 400, Rank: 22000}, {Score: 390, Rank: 30000}, {Score: 380, Rank: 40000}, {Score: 370, Rank: 52000}, {Score: 360, Rank: 66000},
				{Score: 350, Rank: 82000}, {Score: 340, Rank: 100000}, {Score: 330, Rank: 122000}, {Score: 320, Rank: 148000}, {Score: 310, Rank: 178000},
				{Score: 300, Rank: 212000}, {Score: 280, Rank: 295000}, {Score: 260, Rank: 400000}, {Score: 240, Rank: 540000}, {Score: 200, Rank: 900000},
			},
			"LGS": {
				{Score: 500, Rank: 1}, {Score: 495, Rank: 100}, {Score: 490, Rank: 500}, {Score: 485, Rank: 1000}, {Score: 480, Rank: 2000},
				{Score: 475, Rank: 3500}, {Score: 470, Rank: 5000}, {Score: 460, Rank: 10000}, {Score: 450, Rank: 18000}, {Score: 440, Rank: 28000},
				{Score: 430, Rank: 40000}, {Score: 420, Rank: 55000}, {Score: 410, Rank: 72000}, {Score: 400, Rank: 92000}, {Score: 380, Rank: 140000},
				{Score: 360, Rank: 200000}, {Score: 340, Rank: 270000}, {Score: 320, Rank: 350000}, {Score: 300, Rank: 440000},
				{Score: 280, Rank: 540000}, {Score: 260, Rank: 650000}, {Score: 240, Rank: 770000}, {Score: 200, Rank: 1000000},
			},
		},
	}
}

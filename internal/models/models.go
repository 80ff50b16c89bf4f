// Package models holds the domain entities for student exam tracking:
// students, practice-exam records, logged topic errors with their spaced
// repetition schedules, and counseling notes.
package models

import "time"

// ExamTrack identifies which national exam a student is preparing for.
type ExamTrack string

const (
	TrackYKS ExamTrack = "YKS"
	TrackLGS ExamTrack = "LGS"
)

// IsValid reports whether the track is a known exam track.
func (t ExamTrack) IsValid() bool {
	return t == TrackYKS || t == TrackLGS
}

// SubjectsYKS and SubjectsLGS are the canonical subject lists per track.
var (
	SubjectsYKS = []string{"Türkçe", "Matematik", "Fizik", "Kimya", "Biyoloji",
		"Tarih", "Coğrafya", "Felsefe", "Din", "Yabancı Dil"}
	SubjectsLGS = []string{"Türkçe", "Matematik", "Fen Bilimleri",
		"T.C. İnkılap Tarihi", "Din Kültürü", "İngilizce"}
)

// DateOnly truncates a time to midnight UTC. All schedule and exam dates are
// stored day-granular so equality checks do not depend on the time of day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

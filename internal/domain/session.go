// Package domain contains core domain types for the assessment engine.
package domain

import (
	"fmt"
	"time"
)

// Channel identifies the conversation transport a session belongs to.
type Channel string

const (
	ChannelSMS     Channel = "sms"
	ChannelUSSD    Channel = "ussd"
	ChannelConsole Channel = "console"
)

// Valid reports whether the channel is one of the known transports.
func (c Channel) Valid() bool {
	switch c {
	case ChannelSMS, ChannelUSSD, ChannelConsole:
		return true
	}
	return false
}

// Language is a short code for the conversation language.
type Language string

const (
	LanguageEnglish   Language = "en"
	LanguageKiswahili Language = "sw"
	LanguageLuhya     Language = "lh"
	LanguageKikuyu    Language = "ki"
)

// Valid reports whether the language code is supported.
func (l Language) Valid() bool {
	switch l {
	case LanguageEnglish, LanguageKiswahili, LanguageLuhya, LanguageKikuyu:
		return true
	}
	return false
}

// Level is the school level a student reports.
type Level string

const (
	LevelJSS    Level = "JSS"
	LevelSenior Level = "Senior"
)

// Grade is the student's class, 7 through 12. Zero means unset.
type Grade int

const (
	Grade7  Grade = 7
	Grade8  Grade = 8
	Grade9  Grade = 9
	Grade10 Grade = 10
	Grade11 Grade = 11
	Grade12 Grade = 12
)

// ValidFor reports whether the grade belongs to the given level
// (JSS covers 7-9, Senior covers 10-12).
func (g Grade) ValidFor(level Level) bool {
	switch level {
	case LevelJSS:
		return g >= Grade7 && g <= Grade9
	case LevelSenior:
		return g >= Grade10 && g <= Grade12
	}
	return false
}

// Term is the school term, 1 through 3. Zero means unset.
// Only collected on the JSS track.
type Term int

const (
	Term1 Term = 1
	Term2 Term = 2
	Term3 Term = 3
)

// Pathway is one of the three CBE curriculum tracks.
type Pathway string

const (
	PathwaySTEM           Pathway = "STEM"
	PathwaySocialSciences Pathway = "Social Sciences"
	PathwayArtsAndSports  Pathway = "Arts & Sports Science"
)

// Valid reports whether the pathway is one of the three known tracks.
func (p Pathway) Valid() bool {
	switch p {
	case PathwaySTEM, PathwaySocialSciences, PathwayArtsAndSports:
		return true
	}
	return false
}

// Rating is a self-assessed competency score, 1 (Below Expectation)
// through 4 (Exceeding Expectation). Zero means unset.
type Rating int

const (
	RatingBelow       Rating = 1
	RatingApproaching Rating = 2
	RatingMeeting     Rating = 3
	RatingExceeding   Rating = 4
)

// Valid reports whether the rating is within the 1-4 scale.
func (r Rating) Valid() bool {
	return r >= RatingBelow && r <= RatingExceeding
}

// Subject identifies one of the five rated learning areas.
type Subject string

const (
	SubjectMath      Subject = "math"
	SubjectScience   Subject = "science"
	SubjectSocial    Subject = "social"
	SubjectCreative  Subject = "creative"
	SubjectTechnical Subject = "technical"
)

// Subjects lists the five learning areas in assessment order.
var Subjects = []Subject{
	SubjectMath,
	SubjectScience,
	SubjectSocial,
	SubjectCreative,
	SubjectTechnical,
}

// Scores holds the five subject ratings. Zero values mean unset.
type Scores struct {
	Math      Rating
	Science   Rating
	Social    Rating
	Creative  Rating
	Technical Rating
}

// Get returns the rating for a subject.
func (s Scores) Get(sub Subject) Rating {
	switch sub {
	case SubjectMath:
		return s.Math
	case SubjectScience:
		return s.Science
	case SubjectSocial:
		return s.Social
	case SubjectCreative:
		return s.Creative
	case SubjectTechnical:
		return s.Technical
	}
	return 0
}

// Set assigns the rating for a subject, returning an error for an
// unknown subject rather than silently dropping the write.
func (s *Scores) Set(sub Subject, r Rating) error {
	switch sub {
	case SubjectMath:
		s.Math = r
	case SubjectScience:
		s.Science = r
	case SubjectSocial:
		s.Social = r
	case SubjectCreative:
		s.Creative = r
	case SubjectTechnical:
		s.Technical = r
	default:
		return fmt.Errorf("unknown subject %q", sub)
	}
	return nil
}

// Complete reports whether all five ratings are set.
func (s Scores) Complete() bool {
	return s.Math != 0 && s.Science != 0 && s.Social != 0 && s.Creative != 0 && s.Technical != 0
}

// Key identifies a session: one per phone number per transport.
type Key struct {
	Phone   string
	Channel Channel
}

func (k Key) String() string {
	return string(k.Channel) + ":" + k.Phone
}

// Session is the persisted per-phone conversational progress record.
type Session struct {
	Phone          string
	Channel        Channel
	Language       Language
	Level          Level
	Grade          Grade
	Term           Term
	Pathway        Pathway
	Scores         Scores
	CareerInterest string
	State          State
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Key returns the store key for this session.
func (s *Session) Key() Key {
	return Key{Phone: s.Phone, Channel: s.Channel}
}

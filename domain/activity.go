package domain

import "time"

type SessionID string

type ZoneActivity struct {
	Zone         Zone
	Users        int
	LastActivity time.Time
}

type EmotionPulse struct {
	Emotion   Emotion
	Count     int
	LastPulse time.Time
}

type RegistrySnapshot struct {
	Sessions    int
	TotalActive int
	Zones       []ZoneActivity
	Emotions    []EmotionPulse
}

type SweepResult struct {
	ZonesRemoved    int
	EmotionsRemoved int
	BucketsPruned   int
	WhispersRemoved int
}

type MemoryUsage struct {
	RSS       uint64
	HeapAlloc uint64
}

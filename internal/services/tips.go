package services

import (
	"sync"
	"time"
)

// DefaultTipInterval matches the dashboard rotation cadence.
const DefaultTipInterval = 5 * time.Second

var exerciseTips = []string{
	"Take a 10-minute walk daily to boost mood.",
	"Stretch in the morning to wake up your body.",
	"Try a short yoga session to relieve stress.",
	"Dancing counts as exercise — play your favorite song!",
	"Consistency > intensity. Move a little every day.",
}

var sleepTips = []string{
	"Go to bed and wake up at the same time daily.",
	"Avoid screens 1 hour before sleep.",
	"Keep your room cool, dark, and quiet.",
	"Wind down with reading or meditation.",
	"Limit caffeine after 2 PM for deeper rest.",
}

var nutritionTips = []string{
	"Stay hydrated — your brain needs water too!",
	"Eat more leafy greens for better focus.",
	"Avoid skipping meals — your mood depends on fuel.",
	"Omega-3s (like in nuts & fish) help regulate emotions.",
	"Limit sugar to avoid energy crashes.",
}

// Tips is the current tip of each category.
type Tips struct {
	Exercise  string `json:"exercise"`
	Sleep     string `json:"sleep"`
	Nutrition string `json:"nutrition"`
}

// TipsRotator advances three independent tip indices on a fixed interval,
// wrapping around each list. Stop must be called on shutdown so the ticker
// goroutine does not dangle.
type TipsRotator struct {
	mu        sync.Mutex
	exercise  int
	sleep     int
	nutrition int

	interval time.Duration
	done     chan struct{}
	once     sync.Once
}

func NewTipsRotator(interval time.Duration) *TipsRotator {
	if interval <= 0 {
		interval = DefaultTipInterval
	}
	return &TipsRotator{
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start launches the rotation goroutine.
func (t *TipsRotator) Start() {
	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				t.advance()
			case <-t.done:
				return
			}
		}
	}()
}

// Stop cancels the rotation. Safe to call more than once.
func (t *TipsRotator) Stop() {
	t.once.Do(func() {
		close(t.done)
	})
}

func (t *TipsRotator) advance() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.exercise = (t.exercise + 1) % len(exerciseTips)
	t.sleep = (t.sleep + 1) % len(sleepTips)
	t.nutrition = (t.nutrition + 1) % len(nutritionTips)
}

// Current returns the tip currently shown for each category.
func (t *TipsRotator) Current() Tips {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Tips{
		Exercise:  exerciseTips[t.exercise],
		Sleep:     sleepTips[t.sleep],
		Nutrition: nutritionTips[t.nutrition],
	}
}

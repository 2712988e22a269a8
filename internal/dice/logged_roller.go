package dice

import "go.uber.org/zap"

// loggedRoller decorates a Roller and logs every draw at debug level.
type loggedRoller struct {
	next   Roller
	logger *zap.Logger
}

// NewLoggedRoller wraps next so each roll is logged with its dice, kept index and total.
func NewLoggedRoller(next Roller, logger *zap.Logger) Roller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &loggedRoller{next: next, logger: logger}
}

func (l *loggedRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	result, err := l.next.Roll(count, sides, bonus)
	l.log("roll", result, err)
	return result, err
}

func (l *loggedRoller) RollWithAdvantage(sides, bonus int) (*RollResult, error) {
	result, err := l.next.RollWithAdvantage(sides, bonus)
	l.log("roll with advantage", result, err)
	return result, err
}

func (l *loggedRoller) RollWithDisadvantage(sides, bonus int) (*RollResult, error) {
	result, err := l.next.RollWithDisadvantage(sides, bonus)
	l.log("roll with disadvantage", result, err)
	return result, err
}

func (l *loggedRoller) log(msg string, result *RollResult, err error) {
	if err != nil {
		l.logger.Debug(msg+" failed", zap.Error(err))
		return
	}
	l.logger.Debug(msg,
		zap.Int("count", result.Count),
		zap.Int("sides", result.Sides),
		zap.Ints("rolls", result.Rolls),
		zap.Int("kept", result.Kept),
		zap.Int("bonus", result.Bonus),
		zap.Int("total", result.Total),
	)
}

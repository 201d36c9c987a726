package recommend

// RewardForEvent maps a feedback event type to its reward weight.
// Order events additionally earn a value-proportional bonus.
func (c Config) RewardForEvent(eventType string, value float64) float64 {
	switch eventType {
	case "view":
		return c.RewardView
	case "click":
		return c.RewardClick
	case "atc":
		return c.RewardATC
	case "order":
		reward := c.RewardOrder
		if value > 0 {
			reward += value * c.ValueWeight
		}
		return reward
	default:
		return 0
	}
}

// Package demand sizes the aggregate seaweed need of a population.
package demand

// SeaweedNeeded returns the tonnes of wet seaweed needed per day to cover
// the substitutable share of the population's calorie demand. foodWaste is
// a percent markup on demand; substitutionLimit is the fraction of total
// calories seaweed may cover (bounded in practice by iodine content).
func SeaweedNeeded(globalPop, caloriesPerPersonPerDay, foodWaste, caloriesPerTonneWet, substitutionLimit float64) float64 {
	foodDemand := globalPop * caloriesPerPersonPerDay
	foodDemand *= 1 + foodWaste/100
	foodDemand *= substitutionLimit
	return foodDemand / caloriesPerTonneWet
}

package domain

// ExerciseTypes is the catalog of exercise preferences a profile may select.
var ExerciseTypes = []string{
	"Walking",
	"Running",
	"Cycling",
	"Swimming",
	"Yoga",
	"Weight Training",
	"High-Intensity Interval Training (HIIT)",
	"Pilates",
	"Dancing",
	"Hiking",
}

// DiabetesGoals is the catalog of diabetes management goals.
var DiabetesGoals = []string{
	"Weight Management",
	"Blood Sugar Control",
	"Cardiovascular Health",
	"Stress Reduction",
	"Nutrition Improvement",
	"Insulin Sensitivity",
}

// Genders lists the accepted gender values.
var Genders = []string{GenderMale, GenderFemale, GenderOther}

// IsExerciseType reports whether name is in the exercise catalog.
func IsExerciseType(name string) bool {
	return contains(ExerciseTypes, name)
}

// IsDiabetesGoal reports whether name is in the goal catalog.
func IsDiabetesGoal(name string) bool {
	return contains(DiabetesGoals, name)
}

// IsGender reports whether g is an accepted gender value.
func IsGender(g string) bool {
	return contains(Genders, g)
}

// Package workout holds the static training-program catalog and the
// days-per-week to program-rotation mapping. The simulator only consumes
// program ids and titles for narrative flavor; it never schedules sets.
package workout

// Program is one seeded training program.
type Program struct {
	ID         string   `json:"program_id"`
	Title      string   `json:"title"`
	BodyRegion string   `json:"body_region"`
	Location   string   `json:"location"`
	Level      string   `json:"level"`
	Exercises  []string `json:"exercises"`
}

// Catalog is the full seeded program list, in id order.
var Catalog = []Program{
	{"W01", "Chest — Gym — Beginner", "Chest", "Gym", "Beginner", []string{
		"Smith Machine Bench Press", "Incline Dumbbell Press", "Decline Push-Ups",
		"Chest Fly Machine", "Cable Crossover", "Chest Dips"}},
	{"W02", "Chest — Home — Beginner", "Chest", "Home", "Beginner", []string{
		"Push-Ups", "Incline Push-Ups", "Wide-Grip Push-Ups", "Wall Push-Ups",
		"Chest Fly with Resistance Bands", "Knee Push-Ups"}},
	{"W03", "Chest — Gym — Advanced", "Chest", "Gym", "Advanced", []string{
		"Barbell Bench Press", "Incline Barbell Press", "Decline Dumbbell Press",
		"Cable Fly", "Incline Dumbbell Fly", "Bench Press Machine"}},
	{"W04", "Chest — Home — Advanced", "Chest", "Home", "Advanced", []string{
		"Archer Push-Ups", "Clap Push-Ups", "One-Arm Push-Ups",
		"Resistance Band Push-Ups", "Plyometric Push-Ups"}},
	{"W05", "Shoulders — Gym — Beginner", "Shoulders", "Gym", "Beginner", []string{
		"Overhead Dumbbell Press", "Front Raise with Dumbbells", "Lateral Raises",
		"Face Pulls - Cable Machine", "Shrugs with Dumbbells"}},
	{"W06", "Shoulders — Home — Beginner", "Shoulders", "Home", "Beginner", []string{
		"Pike Push-Ups", "Lateral Raise with Resistance Bands",
		"Reverse Flys with Resistance Bands", "Wall Shrugs"}},
	{"W07", "Shoulders — Gym — Advanced", "Shoulders", "Gym", "Advanced", []string{
		"Seated Overhead Barbell Press", "Arnold Press", "Cable Lateral Raise",
		"Incline Dumbbell Front Raise", "Barbell Shrugs"}},
	{"W08", "Shoulders — Home — Advanced", "Shoulders", "Home", "Advanced", []string{
		"Handstand Push-Ups", "One-Arm Pike Push-Ups", "Resistance Band Overhead Press",
		"Lateral Raise with Weighted Backpack", "Wall Shrugs"}},
	{"W09", "Arms — Gym — Beginner", "Arms", "Gym", "Beginner", []string{
		"Barbell Bicep Curl", "Dumbbell Tricep Kickback", "Dumbbell Wrist Curls",
		"Tricep Pushdowns - Cable Machine", "Hammer Curls - Dumbbells",
		"Overhead Dumbbell Tricep Extension"}},
	{"W10", "Arms — Home — Beginner", "Arms", "Home", "Beginner", []string{
		"Chair Dips", "Resistance Band Curls", "Push-Up to Plank Shoulder Taps",
		"Resistance Band Hammer Curls"}},
	{"W11", "Arms — Gym — Advanced", "Arms", "Gym", "Advanced", []string{
		"Preacher Curl - Barbell", "Skull Crushers - EZ Bar", "Reverse Barbell Curl",
		"Cable Overhead Triceps Extension", "Dumbbell Curl", "Dumbbell Zottman Curl"}},
	{"W12", "Arms — Home — Advanced", "Arms", "Home", "Advanced", []string{
		"Diamond Push-Ups", "One-Arm Resistance Band Curls", "Weighted Backpack Tricep Kickbacks",
		"Slow Negative Push-Ups", "Band Overhead Tricep Extensions"}},
	{"W13", "Back — Gym — Beginner", "Back", "Gym", "Beginner", []string{
		"Lat Pulldown", "Seated Cable Row", "Hyperextensions - Extension Machine",
		"Dumbbell Shrugs", "Barbell Row", "Face Pull - Cable Machine"}},
	{"W14", "Back — Home — Beginner", "Back", "Home", "Beginner", []string{
		"Superman Hold", "Resistance Band Rows", "Back Extensions on Floor",
		"Reverse Snow Angels", "Wall Shrugs"}},
	{"W15", "Back — Gym — Advanced", "Back", "Gym", "Advanced", []string{
		"Pull-Ups", "Deadlift", "Barbell Bent-Over Row", "Single-Arm Dumbbell Row",
		"Wide-Grip Pulldown", "Cable Reverse Fly"}},
	{"W16", "Back — Home — Advanced", "Back", "Home", "Advanced", []string{
		"Archer Push-Ups", "Resistance Band Rows", "Weighted Backpack Shrugs",
		"Superman with Resistance Band", "Plank with Shoulder Taps"}},
	{"W17", "Core & Abs — Home — Beginner", "Core & Abs", "Home", "Beginner", []string{
		"Leg Raises", "Bicycle Crunches", "Side Plank Hold", "Reverse Crunches",
		"Flutter Kicks", "Elbow-to-Knee Sit-Ups", "Toe Touches"}},
	{"W18", "Core & Abs — Gym — Advanced", "Core & Abs", "Gym", "Advanced", []string{
		"Weighted Plank", "Hanging Leg Raises", "Ab Wheel Rollout", "Cable Side Crunch",
		"Decline Bench Sit-Ups", "Ball Twists", "Hollow Body Hold", "Lunges - Dumbbells"}},
	{"W19", "Legs — Gym — Beginner", "Legs", "Gym", "Beginner", []string{
		"Leg Press", "Bodyweight Squats", "Hamstring Curls - Machine",
		"Calf Raises", "Glute Bridges"}},
	{"W20", "Legs — Home — Beginner", "Legs", "Home", "Beginner", []string{
		"Wall Sit", "Step-Ups", "Sumo Squats", "Glute Kickbacks",
		"Single-Leg Deadlift - No Weights", "Calf Raises on Stairs", "Side Lunges"}},
	{"W21", "Legs — Gym — Advanced", "Legs", "Gym", "Advanced", []string{
		"Barbell Squats", "Romanian Deadlifts", "Walking Lunges - Barbell",
		"Leg Extensions - Machine", "Bulgarian Split Squats", "Standing Calf Raise Machine",
		"Good Mornings"}},
	{"W22", "Legs — Home — Advanced", "Legs", "Home", "Advanced", []string{
		"Jump Squats", "Single Leg Glute Bridge", "Reverse Lunges",
		"Lateral Step-Ups - Higher Platform", "Isometric Wall Squat with Weight",
		"Broad Jumps"}},
	{"W23", "Upper Body — Gym — Beginner", "Upper Body", "Gym", "Beginner", []string{
		"Chest Press Machine", "Dumbbell Chest Press", "Biceps Curls", "Dumbbell Shoulder Press",
		"Triceps Dips", "Wrist Curls", "Front Raises", "Lat Pulldown - Machine", "Dumbbell Rows"}},
	{"W24", "Upper Body — Home — Beginner", "Upper Body", "Home", "Beginner", []string{
		"Push-Ups", "Incline Push-Ups", "Biceps Curles with Resistance Band", "Pike Push-Ups",
		"Chair Dips", "Wrist Curls with Resistance Band", "Wall Push-Ups"}},
	{"W25", "Upper Body — Gym — Advanced", "Upper Body", "Gym", "Advanced", []string{
		"Barbell Bench Press", "Pull-Ups", "Barbell Curl", "Arnold Press", "Triceps Skull Crushers",
		"Wrist Curls", "Cable Face Pulls", "Dumbbell Shrugs", "Bar Row"}},
	{"W26", "Upper Body — Home — Advanced", "Upper Body", "Home", "Advanced", []string{
		"Decline Push-ups", "Diamond Push-Ups", "Resistance Band Chest Fly", "Handstand Push-Ups",
		"Triceps Dips - On Bench", "Resistance Band Shoulder Press", "Resistance Band Lateral Raise"}},
	{"W27", "Push — Gym — Beginner", "Push", "Gym", "Beginner", []string{
		"Chest Press Machine", "Dumbbell Chest Press", "Machine Shoulder Press",
		"Triceps Pushdown", "Chest Fly Machine", "Dumbbell Front Raise", "Dips - Machine"}},
	{"W28", "Push — Home — Beginner", "Push", "Home", "Beginner", []string{
		"Push-Ups", "Incline Push-Ups", "Pike Push-Ups", "Chair Dips", "Decline Push-Ups",
		"Triceps Push-Ups", "Diamond Push-Ups"}},
	{"W29", "Push — Gym — Advanced", "Push", "Gym", "Advanced", []string{
		"Barbell Bench Press", "Overhead Barbell Press", "Dumbbell Chest Fly",
		"Triceps Skull Crushers", "Dumbbell Arnold Press", "Cable Chest Fly", "Dips - Bodyweight"}},
	{"W30", "Push — Home — Advanced", "Push", "Home", "Advanced", []string{
		"Handstand Push-Ups", "Decline Push-ups with Clap", "Resistance Band Chest Press",
		"Triceps Dips on Bench", "Decline Push-Ups", "Resistance Band Shoulder Press",
		"Resistance Band Lateral Raise"}},
	{"W31", "Pull — Gym — Beginner", "Pull", "Gym", "Beginner", []string{
		"Lat Pulldown - Cable", "Seated Row - Cable", "Machine Rear Delt Fly",
		"Biceps Curl - Barbell", "Hammer Curl - Dumbbells", "Face Pull - Cable", "Bar Row"}},
	{"W32", "Pull — Home — Beginner", "Pull", "Home", "Beginner", []string{
		"Bodyweight Rows", "Superman", "Inverted Rows", "Bicep Curls with Resistance Band",
		"Resistance Band Lat Pulldown", "Reverse Snow Angels", "Renegade Rows"}},
	{"W33", "Pull — Gym — Advanced", "Pull", "Gym", "Advanced", []string{
		"Pull-ups - Bodyweight", "Deadlift", "Barbell Bent-Over Row", "Lat Pulldown - Wide Grip",
		"Single-Arm Dumbbell Row", "Barbell Shrugs", "Cable Face Pull"}},
	{"W34", "Pull — Home — Advanced", "Pull", "Home", "Advanced", []string{
		"Pull-ups - Bodyweight", "Resistance Band Pull-Aparts", "Single-Leg Deadlift - Dumbbell",
		"Resistance Band Single-Arm Row", "Chin-Ups - Bodyweight", "Deadlift - Resistance Band",
		"Band-Assisted Pull-Ups"}},
}

var byID = func() map[string]Program {
	m := make(map[string]Program, len(Catalog))
	for _, p := range Catalog {
		m[p.ID] = p
	}
	return m
}()

// Lookup resolves a program id.
func Lookup(id string) (Program, bool) {
	p, ok := byID[id]
	return p, ok
}

// programRotations maps training days per week to a fixed weekly rotation of
// program ids.
var programRotations = map[int][]string{
	3: {"W33", "W29", "W21"},
	4: {"W25", "W21", "W25", "W21"},
	5: {"W03", "W07", "W11", "W15", "W21"},
}

// ProgramFor returns the weekly rotation for a days-per-week value. Values
// without an exact rotation get the 4-day split.
func ProgramFor(daysPerWeek int) []string {
	if ids, ok := programRotations[daysPerWeek]; ok {
		out := make([]string, len(ids))
		copy(out, ids)
		return out
	}
	out := make([]string, len(programRotations[4]))
	copy(out, programRotations[4])
	return out
}

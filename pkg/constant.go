package pkg

// Objective. enum of route search objective
type Objective string

const (
	ECO_OBJECTIVE  Objective = "eco"
	SAFE_OBJECTIVE Objective = "safe"
)

// TransportMode. enum of the traveller transport mode
type TransportMode string

const (
	WALK  TransportMode = "walk"
	CYCLE TransportMode = "cycle"
	OTHER TransportMode = "other"
)

const (
	// eco cost model
	CARBON_BASELINE_PPM   = 350.0
	CARBON_PENALTY_FACTOR = 0.5

	// safety cost model
	MAX_LIGHTING_LEVEL      = 10.0
	LIGHTING_PENALTY_FACTOR = 20.0
	NO_CCTV_PENALTY         = 50.0
	CROWD_PENALTY_FACTOR    = 10.0

	// per-edge safety rating
	MAX_SAFETY_SCORE       = 100.0
	LIGHTING_SAFETY_FACTOR = 5.0
	CCTV_SAFETY_BONUS      = 25.0
	MAX_CROWD_DENSITY      = 10.0
	CROWD_SAFETY_FACTOR    = 2.5

	// trip metrics
	CAR_EMISSION_KG_PER_KM   = 0.12 // 120 g/km
	OTHER_MODE_CO2_CREDIT    = 0.7
	WALKING_SPEED_M_PER_HOUR = 5000.0
	CYCLING_SPEED_M_PER_HOUR = 15000.0
	CO2_DECIMAL_PLACES       = 3

	DEFAULT_LOCATOR_RADIUS_DEG = 0.002
)

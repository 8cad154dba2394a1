package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyDBType string = "CARKEEP_DB_TYPE"
	EnvKeyDBPath string = "CARKEEP_DB_PATH"
	EnvKeyLogDir string = "CARKEEP_LOG_DIR"

	EnvKeyHttpHostPort string = "CARKEEP_HTTP_HOST_PORT"

	EnvKeyDefaultRate  string = "CARKEEP_DEFAULT_RATE"
	EnvKeyDefaultBurst string = "CARKEEP_DEFAULT_BURST"

	LoggerNameLifecycleCore string = "lifecycle_core"
	LoggerNameTireCore      string = "tire_core"
	LoggerNameOdometerCore  string = "odometer_core"
	LoggerNameRestfulServer string = "restful_server"

	LoggerFieldCategory       string = "category"
	LoggerCategoryRecord      string = "record"
	LoggerCategoryItem        string = "item"
	LoggerCategoryStatus      string = "status"
	LoggerCategoryBaseline    string = "baseline"
	LoggerCategoryOdometer    string = "odometer"
	LoggerCategoryTireSummary string = "tire_summary"
)

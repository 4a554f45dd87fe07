package core

type Conf struct {
	Version            string `long:"version" description:"version of qdeck" env:"QDECK_VERSION"`
	DevMode            bool   `long:"dev-mode" description:"run in dev mode" env:"QDECK_DEV_MODE"`
	DisableStdoutLog   bool   `long:"disable-stdout-log" description:"do not log in standard error" env:"QDECK_DISABLE_STDOUT_LOG"`
	EnableFileLog      bool   `long:"enable-file-log" description:"enable log in file" env:"QDECK_ENABLE_FILE_LOG"`
	LogDir             string `long:"log-dir" description:"rotating log file dir" default:"./shares/logs" env:"QDECK_LOG_DIR"`
	LogLevel           string `long:"log-level" description:"log level" default:"warn" choice:"debug" choice:"info" choice:"warn" choice:"error" env:"QDECK_LOG_LEVEL"`
	LogRotationMaxDays int    `long:"log-rotation-max-days" description:"max days of log rotation" default:"7" env:"QDECK_LOG_ROTATION_MAX_DAYS"`
	HistoryDir         string `long:"history-dir" description:"dir of the daily history log of produced artifacts, disabled when empty" env:"QDECK_HISTORY_DIR"`
	OTLPEndpoint       string `long:"otlp-endpoint" description:"OTLP/HTTP collector URL traces are exported to, disabled when empty" env:"QDECK_OTLP_ENDPOINT"`
	SettingPath        string `long:"setting-path" description:"setting file path, defaults are used when empty" env:"QDECK_SETTING_PATH"`
	OutputDir          string `long:"output-dir" description:"dir rendered figures are written to" default:"." env:"QDECK_OUTPUT_DIR"`
	ImageFormat        string `long:"image-format" description:"format of rendered figures" default:"png" choice:"png" choice:"svg" choice:"pdf" env:"QDECK_IMAGE_FORMAT"`
}

package core

// NonSecretConf is the part of Conf that may be printed or logged.
type NonSecretConf struct {
	Version            string `json:"version"`
	DevMode            bool   `json:"dev_mode"`
	LogLevel           string `json:"log_level"`
	EnableFileLog      bool   `json:"enable_file_log"`
	LogDir             string `json:"log_dir"`
	LogRotationMaxDays int    `json:"log_rotation_max_days"`
	HistoryDir         string `json:"history_dir"`
	SettingPath        string `json:"setting_path"`
	OutputDir          string `json:"output_dir"`
	ImageFormat        string `json:"image_format"`
}

type Info struct {
	Conf *NonSecretConf `json:"conf"`
}

var CurrentInfo *Info

func SetInfo(c *Conf) {
	CurrentInfo = &Info{
		Conf: &NonSecretConf{
			Version:            Version,
			DevMode:            c.DevMode,
			LogLevel:           c.LogLevel,
			EnableFileLog:      c.EnableFileLog,
			LogDir:             c.LogDir,
			LogRotationMaxDays: c.LogRotationMaxDays,
			HistoryDir:         c.HistoryDir,
			SettingPath:        c.SettingPath,
			OutputDir:          c.OutputDir,
			ImageFormat:        c.ImageFormat,
		},
	}
}

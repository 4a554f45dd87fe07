package core

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/oqtopus-team/qdeck/common"
	"go.uber.org/zap"
)

var globalSetting *Setting

// Setting holds one value per component under [com.<name>].
// A registered value is a pointer holding the defaults; keys present in the
// file overwrite its fields and the rest keep their defaults.
type Setting struct {
	ComponentSetting map[string]interface{} `toml:"com,omitempty"`
}

type settingFile struct {
	ComponentSetting map[string]toml.Primitive `toml:"com"`
}

func ResetSetting() {
	globalSetting = newSetting()
}

func RegisterSetting(settingName string, settingVal interface{}) {
	if globalSetting == nil {
		ResetSetting()
	}
	globalSetting.registerSetting(settingName, settingVal)
}

func ParseSettingFromPath(settingsPath string) error {
	tomlString, err := common.ReadSettingsFile(settingsPath)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to read setting file/reason:%s", err))
		return err
	}
	if globalSetting == nil {
		ResetSetting()
	}
	return globalSetting.parseSetting(tomlString)
}

func GetGlobalSetting() *Setting {
	return globalSetting
}

func GetComponentSetting(name string) (interface{}, bool) {
	if globalSetting == nil {
		zap.L().Error("Setting is not initialized")
		return nil, false
	}
	val, ok := globalSetting.ComponentSetting[name]
	return val, ok
}

// ComponentNames returns the registered and parsed component names in sorted order.
func (s *Setting) ComponentNames() []string {
	names := make([]string, 0, len(s.ComponentSetting))
	for n := range s.ComponentSetting {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func newSetting() *Setting {
	return &Setting{
		ComponentSetting: make(map[string]interface{}),
	}
}

func (s *Setting) registerSetting(settingName string, settingVal interface{}) {
	s.ComponentSetting[settingName] = settingVal
}

func (s *Setting) parseSetting(tomlString string) error {
	var f settingFile
	md, err := toml.Decode(tomlString, &f)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to parse setting/reason:%s", err))
		return err
	}
	for name, prim := range f.ComponentSetting {
		val, registered := s.ComponentSetting[name]
		if !registered {
			m := map[string]interface{}{}
			if err := md.PrimitiveDecode(prim, &m); err != nil {
				zap.L().Error(fmt.Sprintf("failed to parse setting of %s/reason:%s", name, err))
				return err
			}
			s.ComponentSetting[name] = m
			continue
		}
		if err := md.PrimitiveDecode(prim, val); err != nil {
			zap.L().Error(fmt.Sprintf("failed to parse setting of %s/reason:%s", name, err))
			return err
		}
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		zap.L().Warn(fmt.Sprintf("unknown setting keys:%v", undecoded))
	}
	zap.L().Debug(fmt.Sprintf("Setting is %v", s.ComponentSetting))
	return nil
}

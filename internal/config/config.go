package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/annel0/voxel-world/internal/logging"
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world"
)

// Config корневая структура конфигурации.
// Отсутствующие в файле поля сохраняют значения из Default.
type Config struct {
	World     WorldConfig         `yaml:"world"`
	Terrain   world.TerrainConfig `yaml:"terrain"`
	Pack      PackConfig          `yaml:"pack"`
	Metrics   MetricsConfig       `yaml:"metrics"`
	Logging   LoggingConfig       `yaml:"logging"`
	Telemetry TelemetryConfig     `yaml:"telemetry"`
}

type WorldConfig struct {
	ViewDistance int      `yaml:"view_distance"` // Радиус в чанках для MeshesNear
	RegionMin    vec.Vec3 `yaml:"region_min"`
	RegionMax    vec.Vec3 `yaml:"region_max"`
	Workers      int      `yaml:"workers"` // 0 - по числу CPU
}

type PackConfig struct {
	Dir string `yaml:"dir"` // Пусто - встроенный набор блоков
}

type MetricsConfig struct {
	Port int `yaml:"port"`
}

type LoggingConfig struct {
	Level      string            `yaml:"level"`
	Dir        string            `yaml:"dir"`        // Пусто - только консоль
	Components map[string]string `yaml:"components"` // Уровни отдельных компонентов: world, terrain, mesher
}

type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		World: WorldConfig{
			ViewDistance: 4,
			RegionMin:    vec.Vec3{X: -2, Y: -2, Z: -2},
			RegionMax:    vec.Vec3{X: 2, Y: 2, Z: 0},
		},
		Terrain: world.DefaultTerrainConfig(),
		Logging: LoggingConfig{Level: "INFO"},
		Telemetry: TelemetryConfig{
			ServiceName: "voxel-worldgen",
		},
	}
}

// GetMetricsPort возвращает порт метрик с поддержкой fallback значений
func (m *MetricsConfig) GetMetricsPort() int {
	return getPortWithEnvFallback(m.Port, "VOXEL_METRICS_PORT", 2112)
}

// LogLevel возвращает разобранный уровень логирования
func (l *LoggingConfig) LogLevel() (logging.LogLevel, error) {
	return logging.ParseLevel(l.Level)
}

// ComponentLevels возвращает разобранные уровни компонентов
func (l *LoggingConfig) ComponentLevels() (map[string]logging.LogLevel, error) {
	levels := make(map[string]logging.LogLevel, len(l.Components))
	for component, name := range l.Components {
		level, err := logging.ParseLevel(name)
		if err != nil {
			return nil, fmt.Errorf("компонент %s: %w", component, err)
		}
		levels[component] = level
	}
	return levels, nil
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	if configPort > 0 {
		return configPort
	}

	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	return defaultPort
}

// Validate проверяет согласованность параметров
func (c *Config) Validate() error {
	if c.World.ViewDistance < 0 {
		return fmt.Errorf("world.view_distance не может быть отрицательным: %d", c.World.ViewDistance)
	}
	if c.World.Workers < 0 {
		return fmt.Errorf("world.workers не может быть отрицательным: %d", c.World.Workers)
	}
	lo, hi := c.World.RegionMin, c.World.RegionMax
	if hi.X < lo.X || hi.Y < lo.Y || hi.Z < lo.Z {
		return fmt.Errorf("world.region_max %v меньше region_min %v", hi, lo)
	}
	if c.Terrain.CeilingZ <= c.Terrain.FloorZ {
		return fmt.Errorf("terrain.ceiling_z (%d) должен быть выше floor_z (%d)", c.Terrain.CeilingZ, c.Terrain.FloorZ)
	}
	if c.Terrain.MaxHeight < c.Terrain.MinHeight {
		return fmt.Errorf("terrain.max_height (%v) меньше min_height (%v)", c.Terrain.MaxHeight, c.Terrain.MinHeight)
	}
	if _, err := c.Logging.LogLevel(); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if _, err := c.Logging.ComponentLevels(); err != nil {
		return fmt.Errorf("logging.components: %w", err)
	}
	return nil
}

// Load читает YAML файл конфигурации поверх Default.
// Если path == "", берёт путь из ENV VOXEL_CONFIG; без него возвращает Default.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("VOXEL_CONFIG")
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("чтение конфигурации: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("разбор конфигурации %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

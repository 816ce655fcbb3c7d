package logging

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Компоненты ядра мира
const (
	ComponentWorld   = "world"
	ComponentTerrain = "terrain"
	ComponentMesher  = "mesher"
)

// LoggerManager хранит по одному логгеру на компонент.
// Уровни, заданные через Configure, применяются и к уже созданным,
// и к ещё не созданным логгерам.
type LoggerManager struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
	levels  map[string]LogLevel
}

var (
	globalManager *LoggerManager
	managerOnce   sync.Once
)

// GetLoggerManager возвращает глобальный менеджер логгеров
func GetLoggerManager() *LoggerManager {
	managerOnce.Do(func() {
		globalManager = newLoggerManager()
	})
	return globalManager
}

func newLoggerManager() *LoggerManager {
	return &LoggerManager{
		loggers: make(map[string]*Logger),
		levels:  make(map[string]LogLevel),
	}
}

// Configure задаёт уровни консольного вывода по компонентам
func (lm *LoggerManager) Configure(levels map[string]LogLevel) {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	for component, level := range levels {
		lm.levels[component] = level
		if l, ok := lm.loggers[component]; ok {
			l.minConsoleLevel = level
		}
	}
}

// GetLogger возвращает логгер компонента, создавая его при первом обращении
func (lm *LoggerManager) GetLogger(component string) (*Logger, error) {
	lm.mu.RLock()
	l, ok := lm.loggers[component]
	lm.mu.RUnlock()
	if ok {
		return l, nil
	}

	lm.mu.Lock()
	defer lm.mu.Unlock()

	if l, ok := lm.loggers[component]; ok {
		return l, nil
	}

	l, err := NewLogger(component)
	if err != nil {
		return nil, fmt.Errorf("логгер компонента %s: %w", component, err)
	}
	if level, ok := lm.levels[component]; ok {
		l.minConsoleLevel = level
	}
	lm.loggers[component] = l
	return l, nil
}

// MustGetLogger возвращает логгер; если файл логов не создался, пишет только в консоль
func (lm *LoggerManager) MustGetLogger(component string) *Logger {
	l, err := lm.GetLogger(component)
	if err == nil {
		return l
	}

	defaultLogger.Warn("%v", err)
	return &Logger{
		component:       component,
		consoleLogger:   defaultLogger.consoleLogger,
		minConsoleLevel: defaultLogger.minConsoleLevel,
		minFileLevel:    ERROR,
	}
}

// CloseAll закрывает файлы всех логгеров и забывает их
func (lm *LoggerManager) CloseAll() error {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	var errs []error
	for _, l := range lm.loggers {
		errs = append(errs, l.Close())
	}
	lm.loggers = make(map[string]*Logger)
	return errors.Join(errs...)
}

// ListComponents возвращает отсортированный список созданных логгеров
func (lm *LoggerManager) ListComponents() []string {
	lm.mu.RLock()
	defer lm.mu.RUnlock()

	components := make([]string, 0, len(lm.loggers))
	for component := range lm.loggers {
		components = append(components, component)
	}
	sort.Strings(components)
	return components
}

// GetComponentLogger возвращает логгер компонента из глобального менеджера
func GetComponentLogger(component string) *Logger {
	return GetLoggerManager().MustGetLogger(component)
}

func GetWorldLogger() *Logger {
	return GetComponentLogger(ComponentWorld)
}

func GetTerrainLogger() *Logger {
	return GetComponentLogger(ComponentTerrain)
}

func GetMesherLogger() *Logger {
	return GetComponentLogger(ComponentMesher)
}

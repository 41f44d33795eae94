package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/zuchi/dashboard-api/internal/config"
	"github.com/zuchi/dashboard-api/internal/usecases/ingesting"
)

// ArchiveRetentionConfig representa a configuração do agendador de limpeza do
// arquivo de payloads
type ArchiveRetentionConfig struct {
	CronSchedule string
	KeepDays     int
	Enabled      bool
}

// ArchiveRetentionService gerencia o agendamento e execução da limpeza dos
// payloads arquivados pelo endpoint do caixa
type ArchiveRetentionService struct {
	scheduler            *gocron.Scheduler
	config               ArchiveRetentionConfig
	archive              *ingesting.Archive
	pruneRunning         bool
	pruneMutex           sync.Mutex
	lastPruneStartedAt   time.Time
	lastPruneCompletedAt time.Time
	lastPruneRemoved     int
}

// NewArchiveRetentionService cria uma nova instância do serviço de limpeza do arquivo
func NewArchiveRetentionService(
	archive *ingesting.Archive,
	appConfig *config.Config,
) *ArchiveRetentionService {
	retentionConfig := ArchiveRetentionConfig{
		CronSchedule: appConfig.ArchiveRetention.CronSchedule,
		KeepDays:     appConfig.ArchiveRetention.KeepDays,
		Enabled:      appConfig.ArchiveRetention.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": retentionConfig.CronSchedule,
		"keep_days":     retentionConfig.KeepDays,
		"enabled":       retentionConfig.Enabled,
	}).Info("Configuração do agendador de limpeza do arquivo carregada")

	return &ArchiveRetentionService{
		scheduler:    scheduler,
		config:       retentionConfig,
		archive:      archive,
		pruneRunning: false,
	}
}

// Start inicia o agendador
func (s *ArchiveRetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza do arquivo de payloads desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza do arquivo de payloads")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.pruneArchive()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza do arquivo de payloads: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza do arquivo de payloads")
		s.scheduler.Stop()
	}()

	return nil
}

// pruneArchive remove do disco os diretórios diários mais antigos que o
// período de retenção configurado
func (s *ArchiveRetentionService) pruneArchive() {
	s.pruneMutex.Lock()
	if s.pruneRunning {
		s.pruneMutex.Unlock()
		logrus.Info("Limpeza do arquivo já em andamento, ignorando")
		return
	}
	s.pruneRunning = true
	s.pruneMutex.Unlock()

	startTime := time.Now()
	s.lastPruneStartedAt = startTime

	defer func() {
		s.pruneMutex.Lock()
		s.pruneRunning = false
		s.pruneMutex.Unlock()
	}()

	logrus.WithField("keep_days", s.config.KeepDays).Info("Iniciando limpeza do arquivo de payloads")

	removed, err := s.archive.Prune(s.config.KeepDays)
	if err != nil {
		logrus.WithError(err).Error("Erro durante a limpeza do arquivo de payloads")
		return
	}

	s.lastPruneCompletedAt = time.Now()
	s.lastPruneRemoved = removed

	logrus.WithFields(logrus.Fields{
		"removed_dirs": removed,
		"duration":     time.Since(startTime).String(),
	}).Info("Limpeza do arquivo de payloads concluída")
}

// TriggerManualSync inicia manualmente uma limpeza do arquivo
func (s *ArchiveRetentionService) TriggerManualSync() {
	s.pruneMutex.Lock()
	if s.pruneRunning {
		s.pruneMutex.Unlock()
		logrus.Info("Limpeza do arquivo já em andamento, ignorando solicitação manual")
		return
	}
	s.pruneMutex.Unlock()

	logrus.Info("Iniciando limpeza manual do arquivo de payloads")
	go s.pruneArchive()
}

// GetStatus retorna o status atual do agendador
func (s *ArchiveRetentionService) GetStatus() map[string]any {
	return map[string]any{
		"enabled":                 s.config.Enabled,
		"cron":                    s.config.CronSchedule,
		"keep_days":               s.config.KeepDays,
		"last_prune_started_at":   s.lastPruneStartedAt,
		"last_prune_completed_at": s.lastPruneCompletedAt,
		"last_prune_removed":      s.lastPruneRemoved,
	}
}

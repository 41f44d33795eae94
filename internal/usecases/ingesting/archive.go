package ingesting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Status de arquivamento de um payload do caixa
const (
	ArchiveSuccess   = "Success"
	ArchiveFailed    = "Failed"
	ArchiveException = "Exception"
)

// Archive grava todos os payloads brutos recebidos do caixa em pastas
// datadas (<dir>/<yyyy-mm-dd>/<status>/), independentemente do resultado do
// processamento — é a trilha de auditoria da ingestão.
type Archive struct {
	baseDir string
}

func NewArchive(baseDir string) *Archive {
	return &Archive{baseDir: baseDir}
}

func (a *Archive) Save(body []byte, orderTime string, status string) error {
	day := time.Now().Format("2006-01-02")
	dir := filepath.Join(a.baseDir, day, status)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("erro ao criar diretório de arquivamento: %w", err)
	}

	path := filepath.Join(dir, archiveFileName(orderTime))
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("erro ao gravar payload: %w", err)
	}

	return nil
}

// archiveFileName deriva o nome do arquivo do horário do pedido
// ("2025-01-02 12:30:00" → "2025-01-02_123000.json"); sem horário utilizável,
// usa o timestamp corrente
func archiveFileName(orderTime string) string {
	if len(orderTime) >= 19 {
		name := orderTime[:19]
		name = strings.ReplaceAll(name, ":", "")
		name = strings.ReplaceAll(name, " ", "_")
		return name + ".json"
	}
	return time.Now().Format("20060102150405") + ".json"
}

// Prune remove as pastas datadas mais antigas que keepDays e devolve quantas
// foram removidas. Pastas com nome fora do padrão de data são ignoradas.
func (a *Archive) Prune(keepDays int) (int, error) {
	entries, err := os.ReadDir(a.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("erro ao listar diretório de arquivamento: %w", err)
	}

	cutoff := time.Now().AddDate(0, 0, -keepDays)
	removed := 0

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		day, err := time.ParseInLocation("2006-01-02", entry.Name(), time.Local)
		if err != nil {
			continue
		}

		if day.Before(cutoff) {
			if err := os.RemoveAll(filepath.Join(a.baseDir, entry.Name())); err != nil {
				return removed, fmt.Errorf("erro ao remover pasta %s: %w", entry.Name(), err)
			}
			removed++
		}
	}

	return removed, nil
}

// ArchivedFile descreve um payload arquivado, na forma que o painel exibe
type ArchivedFile struct {
	FileName      string `json:"fileName"`
	Size          int64  `json:"size"`
	LastWriteTime string `json:"lastWriteTime"`
}

// RecentFiles lista os payloads gravados a partir de cutoff, do mais recente
// para o mais antigo, limitado a limit entradas
func (a *Archive) RecentFiles(cutoff time.Time, limit int) ([]ArchivedFile, error) {
	files := make([]ArchivedFile, 0)
	modTimes := make(map[string]time.Time)

	err := filepath.Walk(a.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}
		if info.ModTime().Before(cutoff) {
			return nil
		}

		files = append(files, ArchivedFile{
			FileName:      info.Name(),
			Size:          info.Size(),
			LastWriteTime: info.ModTime().Format("2006-01-02 15:04:05"),
		})
		modTimes[info.Name()] = info.ModTime()
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return files, nil
		}
		return nil, fmt.Errorf("erro ao percorrer o arquivo de payloads: %w", err)
	}

	sort.SliceStable(files, func(i, j int) bool {
		return modTimes[files[i].FileName].After(modTimes[files[j].FileName])
	})

	if len(files) > limit {
		files = files[:limit]
	}

	return files, nil
}

package glossary

import (
	"context"
	"log/slog"

	"github.com/starford/globelex/internal/checksum"
	"github.com/starford/globelex/internal/dataset"
)

// Sync loads the dataset from p and brings the store up to date:
//   - an unchanged checksum leaves the current table in place
//   - otherwise the rows are rebuilt into a fresh table and swapped in
//
// On failure the previous table, if any, stays current.
func Sync(ctx context.Context, s *Store, p dataset.Provider, opts dataset.Options, logger *slog.Logger) (bool, error) {
	snap, err := dataset.Load(ctx, p, opts)
	if err != nil {
		return false, err
	}

	if cur, err := s.Table(); err == nil && cur.Checksum() == snap.Checksum {
		logger.Debug("sync: dataset unchanged", slog.String("checksum", checksum.Short(snap.Checksum)))
		return false, nil
	}

	records := Build(snap.Rows)
	s.Replace(NewTable(records, snap.Checksum, snap.Source))

	logger.Info("sync: table loaded",
		slog.String("source", snap.Source),
		slog.Int("rows", len(snap.Rows)),
		slog.Int("terms", len(records)),
		slog.String("checksum", checksum.Short(snap.Checksum)))
	return true, nil
}

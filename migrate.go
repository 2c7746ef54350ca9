package goTokenCache

import "context"

// migrateLegacyEntries copies the fixed set of legacy persistent entries
// through the normal dual-write path so each becomes readable under the
// current schema while staying available under the legacy one.
//
// Absent or empty values are left untouched; migration never invents entries.
// Re-running is a no-op because a migrated value is simply rewritten to
// itself, so concurrent instances constructing against the same area are
// harmless.
func (c *Cache) migrateLegacyEntries(ctx context.Context) error {
	for _, key := range migratedPersistentKeys {
		value, err := c.backend.Get(ctx, c.deriveKey(key, false))
		if err != nil {
			return c.storageErr(err)
		}
		if value == "" {
			continue
		}

		if err := c.Set(ctx, key, value, false); err != nil {
			return err
		}

		c.metrics.Inc(MetricMigratedEntry)
		c.audit.emit(ctx, AuditEvent{
			EventType: auditEventMigrated,
			ClientID:  c.clientID,
			Key:       key,
			Success:   true,
		})
	}
	return nil
}

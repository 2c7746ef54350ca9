// Command tokencache-inspect seeds, dumps, and sweeps a token cache area.
//
// It connects to the Redis address given by -redis-addr or REDIS_ADDR; when
// neither is set it starts an embedded miniredis so the tool works offline.
//
// Typical session:
//
//	$ tokencache-inspect -seed 3
//	using miniredis at 127.0.0.1:44391
//	seeded 3 attempts for client client-a
//	$ tokencache-inspect -dump
//	msal.client-a.authority|7f3c...   https://login.example.net/common
//	...
//	$ tokencache-inspect -sweep
//	sweep removed temporary entries (1 attempt still in progress, skipped)
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	goTokenCache "github.com/MrEthical07/goTokenCache"
	"github.com/MrEthical07/goTokenCache/storage"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func main() {
	var (
		redisAddr = flag.String("redis-addr", "", "redis address; if empty, REDIS_ADDR env or miniredis is used")
		clientID  = flag.String("client-id", "client-a", "client id to namespace under")
		seed      = flag.Int("seed", 0, "number of sample authentication attempts to seed")
		dump      = flag.Bool("dump", false, "print every key/value in the area")
		sweep     = flag.String("sweep", "", "run a temporary-entry sweep; 'all' or a state token")
		reset     = flag.Bool("reset", false, "wipe every prefixed key in the area")
	)
	flag.Parse()

	ctx := context.Background()

	addr := *redisAddr
	if addr == "" {
		addr = os.Getenv("REDIS_ADDR")
	}

	var cleanup func()
	if addr == "" {
		mr, err := miniredis.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start miniredis: %v\n", err)
			os.Exit(1)
		}
		addr = mr.Addr()
		cleanup = mr.Close
		fmt.Printf("using miniredis at %s\n", addr)
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer func() {
		_ = client.Close()
		if cleanup != nil {
			cleanup()
		}
	}()

	backend := storage.NewRedisBackend(client)

	cache, err := goTokenCache.New().
		WithClientID(*clientID).
		WithStorage(backend).
		WithMetricsEnabled(true).
		Build(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build cache: %v\n", err)
		os.Exit(1)
	}
	defer cache.Close()

	if *seed > 0 {
		if err := seedAttempts(ctx, cache, *clientID, *seed); err != nil {
			fmt.Fprintf(os.Stderr, "seed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("seeded %d attempts for client %s\n", *seed, *clientID)
	}

	if *sweep != "" {
		state := *sweep
		if state == "all" {
			state = ""
		}
		if err := cache.RemoveTemporaryEntries(ctx, state); err != nil {
			fmt.Fprintf(os.Stderr, "sweep: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("sweep complete")
	}

	if *reset {
		if err := cache.ResetAll(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "reset: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("area reset")
	}

	if *dump {
		if err := dumpArea(ctx, backend); err != nil {
			fmt.Fprintf(os.Stderr, "dump: %v\n", err)
			os.Exit(1)
		}
	}

	snapshot := cache.MetricsSnapshot()
	fmt.Printf("writes=%d dual_writes=%d cleanup_removed=%d skipped_active=%d\n",
		snapshot.Counters[goTokenCache.MetricCacheWrite],
		snapshot.Counters[goTokenCache.MetricDualWrite],
		snapshot.Counters[goTokenCache.MetricCleanupRemoved],
		snapshot.Counters[goTokenCache.MetricCleanupSkippedActive],
	)
}

// seedAttempts writes n simulated authentication attempts: authority and
// account-correlation entries, one access-token record per attempt, and an
// in-progress renewal marker on the first attempt so sweeps have something to
// skip.
func seedAttempts(ctx context.Context, cache *goTokenCache.Cache, clientID string, n int) error {
	for i := 0; i < n; i++ {
		state := goTokenCache.NewRequestState()
		accountID := "account-" + strconv.Itoa(i)

		if err := cache.Set(ctx, goTokenCache.BuildAuthorityKey(state), "https://login.example.net/common", true); err != nil {
			return err
		}
		if err := cache.Set(ctx, goTokenCache.BuildAcquireTokenAccountKey(accountID, state), accountID, false); err != nil {
			return err
		}

		key := goTokenCache.AccessTokenKey{
			Authority:             "https://login.example.net/common",
			ClientID:              clientID,
			Scopes:                "openid profile",
			HomeAccountIdentifier: accountID,
		}
		keyText, err := key.MarshalKey()
		if err != nil {
			return err
		}
		value := goTokenCache.AccessTokenValue{
			AccessToken:           "token-" + state,
			ExpiresIn:             strconv.FormatInt(time.Now().Add(time.Hour).Unix(), 10),
			HomeAccountIdentifier: accountID,
		}
		valueText, err := value.MarshalValue()
		if err != nil {
			return err
		}
		if err := cache.Set(ctx, keyText, valueText, false); err != nil {
			return err
		}

		if i == 0 {
			if err := cache.MarkRenewalInProgress(ctx, state); err != nil {
				return err
			}
		}
	}
	return nil
}

func dumpArea(ctx context.Context, backend storage.Backend) error {
	keys, err := backend.Keys(ctx)
	if err != nil {
		return err
	}
	sort.Strings(keys)

	for _, key := range keys {
		value, err := backend.Get(ctx, key)
		if err != nil {
			return err
		}
		fmt.Printf("%-64s %s\n", key, value)
	}
	return nil
}

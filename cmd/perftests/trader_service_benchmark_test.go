package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"trader-bot/internal/fuzzy"
	inventory "trader-bot/internal/inventoryService"
	model "trader-bot/internal/models"
	repository "trader-bot/internal/repository"
	reputation "trader-bot/internal/reputationService"
	"trader-bot/utils"
)

func init() {
	utils.SetLevel("error")
}

func caller(userID string) model.Caller {
	return model.Caller{GuildID: "bench", UserID: userID}
}

// Benchmark 1: AddStock - Isolated Owners (Low Contention - Micro Benchmark)
func Benchmark_AddStock_Isolated(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := inventory.NewInventoryService(repo, fuzzy.NewResolver(fuzzy.DefaultThreshold))
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		owner := fmt.Sprintf("user_%d", i)
		if _, err := svc.AddStock(ctx, caller(owner), "Steel Sword", 1+rand.Intn(5), ""); err != nil {
			b.Fatalf("failed to add stock: %v", err)
		}
	}
}

// Benchmark 2: AddStock - Shared Row (High Contention - Concurrency Benchmark)
func Benchmark_AddStock_ConcurrentSharedRow(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := inventory.NewInventoryService(repo, fuzzy.NewResolver(fuzzy.DefaultThreshold))
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = svc.AddStock(ctx, caller("shared"), "Lantern", 1, "")
		}
	})
}

// Benchmark 3: Fuzzy Resolve - full listing
func Benchmark_FuzzyResolve(b *testing.B) {
	resolver := fuzzy.NewResolver(fuzzy.DefaultThreshold)

	candidates := make([]fuzzy.Candidate, inventory.DefaultListingLimit)
	for i := range candidates {
		name := fmt.Sprintf("Enchanted Item Number %d", i)
		candidates[i] = fuzzy.Candidate{Key: fuzzy.Normalize(name), Name: name, Seq: utils.GenerateSortableID()}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, ok := resolver.Resolve("enchanted item numbr 42", candidates); !ok {
			b.Fatalf("expected a match")
		}
	}
}

// Benchmark 4: ChangeStock by fuzzy name - Concurrent Owners
func Benchmark_ChangeStock_Concurrent(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := inventory.NewInventoryService(repo, fuzzy.NewResolver(fuzzy.DefaultThreshold))
	ctx := context.Background()

	const owners = 64
	for o := 0; o < owners; o++ {
		for j := 0; j < 20; j++ {
			if _, err := svc.AddStock(ctx, caller(fmt.Sprintf("owner_%d", o)), fmt.Sprintf("Gem of Power %d", j), 1, ""); err != nil {
				b.Fatalf("failed to seed stock: %v", err)
			}
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			owner := fmt.Sprintf("owner_%d", rnd.Intn(owners))
			_, _ = svc.ChangeStock(ctx, caller(owner), fmt.Sprintf("gem of powr %d", rnd.Intn(20)), 1+rnd.Intn(9))
		}
	})
}

// Benchmark 5: Leaderboard - Read Heavy
func Benchmark_Leaderboard(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := reputation.NewReputationService(repo)
	ctx := context.Background()

	for ratee := 0; ratee < 200; ratee++ {
		for rater := 0; rater < 5; rater++ {
			_, err := svc.Rate(ctx, caller(fmt.Sprintf("rater_%d", rater)), fmt.Sprintf("ratee_%d", ratee), 1+(ratee+rater)%5, "")
			if err != nil {
				b.Fatalf("failed to seed rating: %v", err)
			}
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.Leaderboard(ctx, "bench", 10); err != nil {
				b.Fatalf("failed to read leaderboard: %v", err)
			}
		}
	})
}

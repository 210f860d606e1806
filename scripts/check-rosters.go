// check-rosters scans redis for saved lineups that no longer decode or exceed
// the team capacity, and for index entries pointing at missing keys.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dino-battle/internal/entities/dino"
	"github.com/KirkDiggler/dino-battle/internal/repositories/roster"
)

const (
	keyPattern = "roster:*"
	indexKey   = "rosters"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)

	var badKeys []string
	checked := 0

	iter := client.Scan(ctx, 0, keyPattern, 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		checked++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var lineup roster.Lineup
		if err := json.Unmarshal([]byte(data), &lineup); err != nil {
			fmt.Printf("✗ %s does not decode: %v\n", key, err)
			badKeys = append(badKeys, key)
			continue
		}
		if len(lineup.Species) > dino.Capacity {
			fmt.Printf("✗ %s has %d species\n", key, len(lineup.Species))
			badKeys = append(badKeys, key)
		}
	}
	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	ids, err := client.SMembers(ctx, indexKey).Result()
	if err != nil {
		log.Fatal("Failed to read index:", err)
	}
	var staleIDs []string
	for _, id := range ids {
		n, err := client.Exists(ctx, "roster:"+id).Result()
		if err != nil {
			log.Fatal("Failed to check key:", err)
		}
		if n == 0 {
			fmt.Printf("✗ index entry %s has no lineup\n", id)
			staleIDs = append(staleIDs, id)
		}
	}

	fmt.Printf("\nChecked %d lineups, %d bad, %d stale index entries\n", checked, len(badKeys), len(staleIDs))
	if len(badKeys) == 0 && len(staleIDs) == 0 {
		return
	}

	fmt.Print("\nDelete bad lineups and stale index entries? (yes/no): ")
	response, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	if strings.TrimSpace(response) != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range badKeys {
		id := strings.TrimPrefix(key, "roster:")
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
			continue
		}
		client.SRem(ctx, indexKey, id)
		fmt.Printf("Deleted %s\n", key)
	}
	for _, id := range staleIDs {
		if err := client.SRem(ctx, indexKey, id).Err(); err != nil {
			fmt.Printf("Failed to unindex %s: %v\n", id, err)
		}
	}
	fmt.Println("Cleanup complete")
}

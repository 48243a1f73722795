package main

import (
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "osprey/api/pb"
)

func main() {
	var (
		addr    = flag.String("addr", "127.0.0.1:50051", "engine gRPC address")
		conns   = flag.Int("c", 16, "concurrency (goroutines)")
		total   = flag.Int("n", 10000, "total orders")
		mid     = flag.Int64("mid", 10000, "mid price in ticks")
		spread  = flag.Int64("spread", 20, "half-width of the price band")
		market  = flag.Float64("market", 0.05, "fraction of market orders")
		timeout = flag.Duration("timeout", 5*time.Second, "per-request timeout")
	)
	flag.Parse()

	conn, err := grpc.NewClient(
		*addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dial failed: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	client := pb.NewOrderServiceClient(conn)

	// Random run prefix keeps order ids unique across repeated runs
	// against the same engine.
	u := uuid.New()
	base := binary.BigEndian.Uint64(u[:8]) &^ (uint64(1)<<40 - 1)

	var (
		nextID   atomic.Uint64
		mu       sync.Mutex
		lats     = make([]float64, 0, *total)
		errCount atomic.Uint64
	)
	nextID.Store(base)

	perWorker := (*total + *conns - 1) / *conns
	var wg sync.WaitGroup
	start := time.Now()

	for w := 0; w < *conns; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))

			for j := 0; j < perWorker; j++ {
				req := &pb.PlaceOrderRequest{
					OrderId: nextID.Add(1),
					Side:    pb.Side(rng.Intn(2)),
					Type:    pb.OrderType_ORDER_TYPE_LIMIT,
					Price:   *mid + rng.Int63n(2**spread+1) - *spread,
					Qty:     1 + rng.Int63n(100),
				}
				if rng.Float64() < *market {
					req.Type = pb.OrderType_ORDER_TYPE_MARKET
					req.Price = 0
				}

				ctx, cancel := context.WithTimeout(context.Background(), *timeout)
				t0 := time.Now()
				_, err := client.PlaceOrder(ctx, req)
				cancel()

				if err != nil {
					errCount.Add(1)
					continue
				}

				mu.Lock()
				lats = append(lats, float64(time.Since(t0).Microseconds())/1000.0)
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	elapsed := time.Since(start).Seconds()

	sent := len(lats)
	sort.Float64s(lats)

	pct := func(q float64) float64 {
		if sent == 0 {
			return 0
		}
		idx := int(math.Floor(q*float64(sent-1) + 0.5))
		return lats[idx]
	}

	var sum float64
	for _, v := range lats {
		sum += v
	}
	mean := 0.0
	if sent > 0 {
		mean = sum / float64(sent)
	}

	fmt.Printf("sent=%d errors=%d duration=%.2fs req/s=%.0f\n",
		sent, errCount.Load(), elapsed, float64(sent)/elapsed)
	fmt.Printf("latency(ms): mean=%.3f p50=%.3f p90=%.3f p99=%.3f\n",
		mean, pct(0.50), pct(0.90), pct(0.99))
}

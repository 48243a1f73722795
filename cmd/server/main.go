package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"osprey/api/grpcserver"
	pb "osprey/api/pb"
	"osprey/config"
	"osprey/domain/orderbook"
	"osprey/infra/kafka"
	"osprey/infra/logging"
	"osprey/infra/memory"
	"osprey/infra/sequence"
	entrywal "osprey/infra/wal/entry"
	exitwal "osprey/infra/wal/exit"
	"osprey/jobs/broadcaster"
	"osprey/jobs/tradefeed"
	"osprey/service"
	"osprey/snapshot"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// ---------------- Entry WAL ----------------

	entryWAL, err := entrywal.Open(entrywal.Config{
		Dir:         cfg.EntryWALDir,
		SegmentSize: cfg.EntryWALSegment,
	})
	if err != nil {
		log.Fatal("entry WAL init failed", zap.Error(err))
	}
	defer entryWAL.Close()

	// ---------------- Exit WAL ----------------

	exitWAL, err := exitwal.Open(cfg.ExitWALDir)
	if err != nil {
		log.Fatal("exit WAL init failed", zap.Error(err))
	}
	defer exitWAL.Close()

	// ---------------- Memory ----------------

	pool := memory.NewPool(func() *orderbook.Order {
		return &orderbook.Order{}
	})
	ring := memory.NewRetireRing(cfg.PoolSize)
	reader := snapshot.NewReader()

	// ---------------- Domain ----------------

	seqGen := sequence.New(0)
	book := orderbook.NewOrderBook()
	eng := orderbook.NewEngine(book, orderbook.NopSink{}, ring)

	// ---------------- Recovery ----------------

	snapSeq, err := snapshot.Load(cfg.SnapshotDir, eng, pool)
	if err != nil {
		log.Fatal("snapshot load failed", zap.Error(err))
	}

	if err := service.ReplayFromWAL(
		cfg.EntryWALDir,
		snapSeq,
		eng,
		pool,
		seqGen,
		exitWAL,
		log,
	); err != nil {
		log.Fatal("WAL replay failed", zap.Error(err))
	}

	// ---------------- Service ----------------

	svc := service.NewOrderService(
		eng,
		pool,
		ring,
		reader,
		seqGen,
		entryWAL,
		exitWAL,
		log,
	)

	// ---------------- Background Jobs ----------------

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	go func() {
		t := time.NewTicker(cfg.EpochInterval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				svc.AdvanceEpoch()
			}
		}
	}()

	svc.StartSnapshotJob(ctx, cfg.SnapshotDir, cfg.SnapshotInterval)

	bc, err := broadcaster.New(
		exitWAL,
		cfg.KafkaBrokers,
		cfg.EventsTopic,
		cfg.BroadcastInterval,
		log,
	)
	if err != nil {
		log.Fatal("broadcaster init failed", zap.Error(err))
	}
	defer bc.Close()
	go bc.Run(ctx)

	tickWriter := kafka.NewTickWriter(cfg.KafkaBrokers, cfg.TradesTopic)
	defer tickWriter.Close()
	feed := tradefeed.New(tickWriter, svc.Fills(), log)
	go feed.Run(ctx)

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatal("listen failed", zap.Error(err))
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterOrderServiceServer(grpcSrv, grpcserver.NewServer(svc, log))

	go func() {
		<-ctx.Done()
		grpcSrv.GracefulStop()
	}()

	log.Info("engine running",
		zap.String("addr", cfg.GRPCAddr),
		zap.Uint64("recovered_seq", seqGen.Current()),
	)

	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatal("gRPC server exited", zap.Error(err))
	}
}

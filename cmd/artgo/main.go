// Command artgo clusters a binary dataset and prints the clusters.
//
// The dataset comes from ARTGO_DATASET:
//
//	s3://bucket/key            AWS default credential chain
//	minio://host:port/bucket/key  MINIO_ACCESS_KEY, MINIO_SECRET_KEY, MINIO_SECURE
//	path/to/file               local file
//
// Without ARTGO_DATASET the built-in purchases matrix is used.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hupe1980/artgo"
	"github.com/hupe1980/artgo/blobstore"
	miniostore "github.com/hupe1980/artgo/blobstore/minio"
	s3store "github.com/hupe1980/artgo/blobstore/s3"
	"github.com/hupe1980/artgo/dataset"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := artgo.NewTextLogger(slog.LevelInfo)

	if err := run(ctx, os.Stdout, logger, os.Getenv("ARTGO_DATASET")); err != nil {
		logger.Error("artgo failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, logger *artgo.Logger, source string) error {
	m, err := load(ctx, source)
	if err != nil {
		return err
	}

	eng, err := artgo.New(m.Features, m.Len(), artgo.WithLogger(logger))
	if err != nil {
		return err
	}

	res, err := eng.Assign(m.Rows)
	if err != nil {
		return err
	}
	if err := res.Err(); err != nil {
		logger.Warn("result is not stable", "error", err)
	}

	return report(w, m, res)
}

func load(ctx context.Context, source string) (*dataset.Matrix, error) {
	switch {
	case source == "":
		return dataset.Purchases(), nil

	case strings.HasPrefix(source, "s3://"):
		bucket, key, ok := strings.Cut(strings.TrimPrefix(source, "s3://"), "/")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid dataset %q: want s3://bucket/key", source)
		}
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load AWS config: %w", err)
		}
		store := s3store.NewStore(awss3.NewFromConfig(cfg), bucket)
		return dataset.Load(ctx, store, key)

	case strings.HasPrefix(source, "minio://"):
		parts := strings.SplitN(strings.TrimPrefix(source, "minio://"), "/", 3)
		if len(parts) != 3 || parts[2] == "" {
			return nil, fmt.Errorf("invalid dataset %q: want minio://host/bucket/key", source)
		}
		client, err := minio.New(parts[0], &minio.Options{
			Creds:  credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
			Secure: os.Getenv("MINIO_SECURE") == "true",
		})
		if err != nil {
			return nil, fmt.Errorf("minio client: %w", err)
		}
		return dataset.Load(ctx, miniostore.NewStore(client, parts[1], ""), parts[2])

	default:
		dir, name := filepath.Split(source)
		if dir == "" {
			dir = "."
		}
		return dataset.Load(ctx, blobstore.NewLocalStore(dir), name)
	}
}

func report(w io.Writer, m *dataset.Matrix, res *artgo.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "ITEM\tFEATURES\tCLUSTER")
	for i, row := range m.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", m.Label(i), bits(row), res.Membership[i])
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "CLUSTER\tPROTOTYPE\tMEMBERS")
	for _, c := range res.Clusters() {
		labels := make([]string, len(c.Members))
		for k, item := range c.Members {
			labels[k] = m.Label(item)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", c.ID, bits(c.Prototype), strings.Join(labels, " "))
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "%d clusters after %d passes (converged: %t)\n", res.NumClusters(), res.Passes, res.Converged)

	return tw.Flush()
}

func bits(row []uint8) string {
	b := make([]byte, len(row))
	for i, v := range row {
		b[i] = '0' + v
	}
	return string(b)
}

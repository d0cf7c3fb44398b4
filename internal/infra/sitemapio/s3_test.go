package sitemapio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/poruru-code/sitemap-cli/internal/domain/sitemap"
)

type fakeS3 struct {
	objects      map[string][]byte
	contentTypes map[string]string
	putErr       error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}, contentTypes: map[string]string{}}
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &s3types.NoSuchKey{Message: aws.String("not found")}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	key := aws.ToString(in.Bucket) + "/" + aws.ToString(in.Key)
	f.objects[key] = data
	f.contentTypes[key] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func TestS3LoadReverseSave(t *testing.T) {
	ctx := context.Background()
	api := newFakeS3()
	api.objects["maps/pismo/site.json"] = []byte(threePages)
	store := NewStore(NewS3ObjectStore(api), nil)

	doc, err := store.Load(ctx, "s3://maps/pismo/site.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	reversed, err := sitemap.Reverse(doc)
	if err != nil {
		t.Fatalf("reverse: %v", err)
	}
	if err := store.Save(ctx, "s3://maps/pismo/site-reversed.json", reversed); err != nil {
		t.Fatalf("save: %v", err)
	}

	if got := api.contentTypes["maps/pismo/site-reversed.json"]; got != "application/json" {
		t.Fatalf("unexpected content type: %q", got)
	}
	again, err := store.Load(ctx, "s3://maps/pismo/site-reversed.json")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	keys, _ := sitemap.PageKeys(again)
	if !slices.Equal(keys, []string{"blog", "about", "home"}) {
		t.Fatalf("unexpected order: %v", keys)
	}
}

func TestS3MissingObjectIsIOError(t *testing.T) {
	store := NewStore(NewS3ObjectStore(newFakeS3()), nil)
	_, err := store.Load(context.Background(), "s3://maps/missing.json")
	if !errors.Is(err, ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
	var noSuchKey *s3types.NoSuchKey
	if !errors.As(err, &noSuchKey) {
		t.Fatalf("expected wrapped NoSuchKey, got %v", err)
	}
}

func TestS3PutFailureIsIOError(t *testing.T) {
	api := newFakeS3()
	api.putErr = errors.New("access denied")
	store := NewStore(NewS3ObjectStore(api), nil)

	err := store.Save(context.Background(), "s3://maps/out.yaml", sitemap.NewDocument())
	if !errors.Is(err, ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
}

func TestLazyS3ObjectStoreBuildsClientOnce(t *testing.T) {
	api := newFakeS3()
	api.objects["maps/site.json"] = []byte(threePages)
	calls := 0
	lazy := NewLazyS3ObjectStore(S3Options{Endpoint: "http://localhost:9000", UsePathStyle: true})
	lazy.newAPI = func(_ context.Context, opts S3Options) (S3API, error) {
		calls++
		if opts.Endpoint != "http://localhost:9000" || !opts.UsePathStyle {
			t.Fatalf("unexpected options: %+v", opts)
		}
		return api, nil
	}

	store := NewStore(lazy, nil)
	for i := 0; i < 2; i++ {
		if _, err := store.Load(context.Background(), "s3://maps/site.json"); err != nil {
			t.Fatalf("load: %v", err)
		}
	}
	if calls != 1 {
		t.Fatalf("client built %d times", calls)
	}
}

func TestLazyS3ObjectStoreReportsInitError(t *testing.T) {
	lazy := NewLazyS3ObjectStore(S3Options{})
	lazy.newAPI = func(context.Context, S3Options) (S3API, error) {
		return nil, errors.New("no credentials")
	}
	err := NewStore(lazy, nil).Save(context.Background(), "s3://maps/site.json", sitemap.NewDocument())
	if !errors.Is(err, ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
}

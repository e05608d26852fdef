package wire

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/fieldmaskpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type color int32

const (
	colorUnspecified color = 0
	colorRed         color = 1
	colorBlue        color = 2
)

var (
	colorName  = map[int32]string{0: "COLOR_UNSPECIFIED", 1: "RED", 2: "BLUE"}
	colorValue = map[string]int32{"COLOR_UNSPECIFIED": 0, "RED": 1, "BLUE": 2}
)

func (c color) String() string             { return EnumName(colorName, int32(c)) }
func (color) EnumValues() map[string]int32 { return colorValue }

type child struct {
	Title string   `protobuf:"1,title"`
	Kids  []*child `protobuf:"2,kids"`
}

type sample struct {
	Name        string                 `protobuf:"1,name"`
	Count       int32                  `protobuf:"2,count"`
	Total       int64                  `protobuf:"3,total"`
	Enabled     bool                   `protobuf:"4,enabled"`
	Ratio       float64                `protobuf:"5,ratio"`
	Payload     []byte                 `protobuf:"6,payload"`
	Color       color                  `protobuf:"7,color"`
	Tags        []string               `protobuf:"8,tags"`
	Scores      []int64                `protobuf:"9,scores"`
	Labels      map[string]string      `protobuf:"10,labels"`
	Child       *child                 `protobuf:"11,child"`
	Children    []*child               `protobuf:"12,children"`
	CreateTime  *timestamppb.Timestamp `protobuf:"13,create_time"`
	Latency     *durationpb.Duration   `protobuf:"14,latency"`
	Limit       *int32                 `protobuf:"15,limit"`
	Colors      []color                `protobuf:"16,colors"`
	DisplayName string                 `protobuf:"17,display_name"`
	Weight      float32                `protobuf:"18,weight"`
	Size        uint64                 `protobuf:"19,size"`
}

type sampleSubset struct {
	Name  string `protobuf:"1,name"`
	Child *child `protobuf:"11,child"`
}

// mirrors google.protobuf.Timestamp
type timestamp struct {
	Seconds int64 `protobuf:"1,seconds"`
	Nanos   int32 `protobuf:"2,nanos"`
}

// mirrors google.protobuf.FieldMask
type fieldMask struct {
	Paths []string `protobuf:"1,paths"`
}

func fullSample() *sample {
	limit := int32(0)
	return &sample{
		Name:        "environments/prod",
		Count:       -7,
		Total:       1 << 40,
		Enabled:     true,
		Ratio:       0.25,
		Payload:     []byte{0, 1, 2, 255},
		Color:       colorBlue,
		Tags:        []string{"a", "", "c"},
		Scores:      []int64{-1, 0, 300},
		Labels:      map[string]string{"tier": "gold", "env": "prod"},
		Child:       &child{Title: "root", Kids: []*child{{Title: "leaf"}}},
		Children:    []*child{{Title: "x"}, {}},
		CreateTime:  timestamppb.New(time.Date(2024, 5, 1, 12, 0, 0, 500, time.UTC)),
		Latency:     durationpb.New(1500 * time.Millisecond),
		Limit:       &limit,
		Colors:      []color{colorRed, colorUnspecified},
		DisplayName: "Production",
		Weight:      1.5,
		Size:        42,
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	in := fullSample()
	b, err := Marshal(in)
	require.NoError(t, err)

	out := new(sample)
	require.NoError(t, Unmarshal(b, out))
	assert.True(t, Equal(in, out))
	assert.Equal(t, "leaf", out.Child.Kids[0].Title)
	require.NotNil(t, out.Limit)
	assert.Equal(t, int32(0), *out.Limit, "explicitly set optional zero keeps presence")
	assert.Equal(t, in.CreateTime.AsTime(), out.CreateTime.AsTime())
}

func TestMarshalOmitsDefaults(t *testing.T) {
	b, err := Marshal(&sample{})
	require.NoError(t, err)
	assert.Empty(t, b)

	b, err = Marshal((*sample)(nil))
	require.NoError(t, err)
	assert.Nil(t, b)
}

func TestEmptyNestedMessageKeepsPresence(t *testing.T) {
	b, err := Marshal(&sample{Child: &child{}})
	require.NoError(t, err)
	out := new(sample)
	require.NoError(t, Unmarshal(b, out))
	assert.NotNil(t, out.Child)
}

func TestUnknownFieldsAreSkipped(t *testing.T) {
	b, err := Marshal(fullSample())
	require.NoError(t, err)

	out := new(sampleSubset)
	require.NoError(t, Unmarshal(b, out))
	assert.Equal(t, "environments/prod", out.Name)
	assert.Equal(t, "root", out.Child.Title)
}

func TestUnmarshalResetsTarget(t *testing.T) {
	out := &sample{Name: "stale", Tags: []string{"old"}}
	b, err := Marshal(&sample{Count: 1})
	require.NoError(t, err)
	require.NoError(t, Unmarshal(b, out))
	assert.Empty(t, out.Name)
	assert.Empty(t, out.Tags)
	assert.Equal(t, int32(1), out.Count)
}

func TestRepeatedNumericsAcceptUnpacked(t *testing.T) {
	var b []byte
	for _, x := range []int64{5, -2} {
		b = protowire.AppendTag(b, 9, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(x))
	}
	out := new(sample)
	require.NoError(t, Unmarshal(b, out))
	assert.Equal(t, []int64{5, -2}, out.Scores)
}

func TestRepeatedMessageFieldsMerge(t *testing.T) {
	first, err := Marshal(&sample{Child: &child{Title: "a"}})
	require.NoError(t, err)
	second, err := Marshal(&sample{Child: &child{Kids: []*child{{Title: "k"}}}})
	require.NoError(t, err)

	out := new(sample)
	require.NoError(t, Unmarshal(append(first, second...), out))
	assert.Equal(t, "a", out.Child.Title)
	assert.Len(t, out.Child.Kids, 1)
}

func TestWireCompatibleWithProtobufRuntime(t *testing.T) {
	ts := timestamppb.New(time.Date(2023, 1, 2, 3, 4, 5, 6, time.UTC))
	pb, err := proto.Marshal(ts)
	require.NoError(t, err)

	var mirror timestamp
	require.NoError(t, Unmarshal(pb, &mirror))
	assert.Equal(t, ts.Seconds, mirror.Seconds)
	assert.Equal(t, ts.Nanos, mirror.Nanos)

	ours, err := Marshal(&fieldMask{Paths: []string{"title", "order"}})
	require.NoError(t, err)
	mask := new(fieldmaskpb.FieldMask)
	require.NoError(t, proto.Unmarshal(ours, mask))
	assert.Equal(t, []string{"title", "order"}, mask.Paths)
}

func TestInvalidUTF8IsRejected(t *testing.T) {
	_, err := Marshal(&sample{Name: string([]byte{0xff, 0xfe})})
	assert.Error(t, err)

	b := protowire.AppendTag(nil, 1, protowire.BytesType)
	b = protowire.AppendBytes(b, []byte{0xff})
	assert.Error(t, Unmarshal(b, new(sample)))
}

func TestTruncatedInputFails(t *testing.T) {
	b, err := Marshal(fullSample())
	require.NoError(t, err)
	assert.Error(t, Unmarshal(b[:len(b)-1], new(sample)))
}

func TestWrongWireTypeFails(t *testing.T) {
	b := protowire.AppendTag(nil, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, 3)
	assert.Error(t, Unmarshal(b, new(sample)))
}

func TestJSONShape(t *testing.T) {
	in := &sample{
		Name:        "instances/mysql",
		Total:       12,
		Color:       colorRed,
		Payload:     []byte("hi"),
		DisplayName: "My SQL",
		Labels:      map[string]string{"b": "2", "a": "1"},
	}
	b, err := MarshalJSON(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "instances/mysql",
		"total": "12",
		"payload": "aGk=",
		"color": "RED",
		"labels": {"a": "1", "b": "2"},
		"displayName": "My SQL"
	}`, string(b))
}

func TestJSONRoundTrip(t *testing.T) {
	in := fullSample()
	b, err := MarshalJSON(in)
	require.NoError(t, err)

	out := new(sample)
	require.NoError(t, UnmarshalJSON(b, out))
	assert.True(t, Equal(in, out))
}

func TestJSONInputLeniency(t *testing.T) {
	out := new(sample)
	err := UnmarshalJSON([]byte(`{
		"display_name": "by proto name",
		"count": "3",
		"total": 9,
		"color": 2,
		"child": null,
		"unknownField": {"x": 1},
		"createTime": "2024-01-01T00:00:00Z",
		"latency": "2s"
	}`), out)
	require.NoError(t, err)
	assert.Equal(t, "by proto name", out.DisplayName)
	assert.Equal(t, int32(3), out.Count)
	assert.Equal(t, int64(9), out.Total)
	assert.Equal(t, colorBlue, out.Color)
	assert.Nil(t, out.Child)
	assert.Equal(t, int64(1704067200), out.CreateTime.Seconds)
	assert.Equal(t, 2*time.Second, out.Latency.AsDuration())
}

func TestJSONRejectsUnknownEnumName(t *testing.T) {
	err := UnmarshalJSON([]byte(`{"color":"PURPLE"}`), new(sample))
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	dst := &sample{Name: "keep", Count: 1, Child: &child{Title: "old", Kids: []*child{{}}}}
	src := &sample{Name: "ignored", Count: 2, Child: &child{Title: "new"}}

	require.NoError(t, Merge(dst, src, []string{"count", "child.title"}))
	assert.Equal(t, "keep", dst.Name)
	assert.Equal(t, int32(2), dst.Count)
	assert.Equal(t, "new", dst.Child.Title)
	assert.Len(t, dst.Child.Kids, 1)

	src.Child.Title = "mutated"
	assert.Equal(t, "new", dst.Child.Title, "merge copies values")

	assert.Error(t, Merge(dst, src, []string{"nope"}))
	assert.Error(t, Merge(dst, src, []string{"name.x"}))
}

func TestCloneIsDeep(t *testing.T) {
	in := fullSample()
	out := Clone(in)
	require.True(t, Equal(in, out))

	out.Child.Title = "changed"
	out.Labels["tier"] = "silver"
	out.CreateTime.Seconds = 0
	assert.Equal(t, "root", in.Child.Title)
	assert.Equal(t, "gold", in.Labels["tier"])
	assert.NotZero(t, in.CreateTime.Seconds)
}

func TestSetField(t *testing.T) {
	s := new(sample)
	require.NoError(t, SetField(s, "name", "projects/p1"))
	require.NoError(t, SetField(s, "count", "12"))
	require.NoError(t, SetField(s, "enabled", "true"))
	require.NoError(t, SetField(s, "color", "BLUE"))
	require.NoError(t, SetField(s, "tags", "x"))
	require.NoError(t, SetField(s, "tags", "y"))
	require.NoError(t, SetField(s, "child.title", "nested"))
	require.NoError(t, SetField(s, "limit", "5"))
	require.NoError(t, SetField(s, "createTime", "2024-02-03T04:05:06Z"))

	assert.Equal(t, "projects/p1", s.Name)
	assert.Equal(t, int32(12), s.Count)
	assert.True(t, s.Enabled)
	assert.Equal(t, colorBlue, s.Color)
	assert.Equal(t, []string{"x", "y"}, s.Tags)
	assert.Equal(t, "nested", s.Child.Title)
	assert.Equal(t, int32(5), *s.Limit)
	assert.Equal(t, int64(1706933106), s.CreateTime.Seconds)

	assert.Error(t, SetField(s, "count", "many"))
	assert.Error(t, SetField(s, "labels", "x"))
	assert.Error(t, SetField(s, "missing", "x"))
}

func TestGetStringAndHasField(t *testing.T) {
	s := &sample{Name: "n", Child: &child{Title: "t"}}
	v, ok := GetString(s, "child.title")
	assert.True(t, ok)
	assert.Equal(t, "t", v)

	_, ok = GetString(&sample{}, "child.title")
	assert.False(t, ok)
	_, ok = GetString(s, "count")
	assert.False(t, ok)

	assert.True(t, HasField((*sample)(nil), "child.kids"))
	assert.False(t, HasField(&sample{}, "parent"))
}

func TestClearFields(t *testing.T) {
	s := &sample{Name: "secret", Child: &child{Title: "secret", Kids: []*child{{Title: "secret"}}}}
	ClearFields(s, "title")
	assert.Equal(t, "secret", s.Name)
	assert.Empty(t, s.Child.Title)
	assert.Empty(t, s.Child.Kids[0].Title)
}

func TestCodecFallsBackToProto(t *testing.T) {
	var c Codec
	ts := timestamppb.Now()
	b, err := c.Marshal(ts)
	require.NoError(t, err)
	out := new(timestamppb.Timestamp)
	require.NoError(t, c.Unmarshal(b, out))
	assert.True(t, proto.Equal(ts, out))
	assert.Equal(t, "proto", c.Name())
}

func TestJSONName(t *testing.T) {
	assert.Equal(t, "sheetSha256", jsonName("sheet_sha256"))
	assert.Equal(t, "createTime", jsonName("create_time"))
	assert.Equal(t, "name", jsonName("name"))
}

type detail struct {
	Text string `protobuf:"1,text"`
}

type event struct {
	Name     string  `protobuf:"1,name"`
	Instance *detail `protobuf:"4,instance,oneof=detail"`
	Database *detail `protobuf:"5,database,oneof=detail"`
	Retries  *int32  `protobuf:"6,retries,oneof=detail"`
}

func TestOneofLastMemberWins(t *testing.T) {
	first, err := Marshal(&event{Instance: &detail{Text: "x"}})
	require.NoError(t, err)
	second, err := Marshal(&event{Name: "e", Database: &detail{Text: "y"}})
	require.NoError(t, err)

	var got event
	require.NoError(t, Unmarshal(append(first, second...), &got))
	assert.Nil(t, got.Instance)
	assert.Equal(t, &detail{Text: "y"}, got.Database)
	assert.Equal(t, "e", got.Name)

	b := protowire.AppendTag(nil, 6, protowire.VarintType)
	b = protowire.AppendVarint(b, 3)
	require.NoError(t, Unmarshal(append(second, b...), &got))
	assert.Nil(t, got.Database)
	require.NotNil(t, got.Retries)
	assert.Equal(t, int32(3), *got.Retries)
}

func TestOneofJSON(t *testing.T) {
	var got event
	err := UnmarshalJSON([]byte(`{"instance":{"text":"x"},"database":{"text":"y"}}`), &got)
	assert.ErrorContains(t, err, `oneof "detail"`)

	require.NoError(t, UnmarshalJSON([]byte(`{"instance":{"text":"x"},"database":null}`), &got))
	assert.Equal(t, &detail{Text: "x"}, got.Instance)
	assert.Nil(t, got.Database)
}

func TestOneofTagValidation(t *testing.T) {
	type badMember struct {
		Name string `protobuf:"1,name,oneof=x"`
	}
	type badOption struct {
		Child *detail `protobuf:"1,child,packed"`
	}
	assert.Panics(t, func() { infoOf(reflect.TypeOf(badMember{})) })
	assert.Panics(t, func() { infoOf(reflect.TypeOf(badOption{})) })
}

func TestMergeOneofMember(t *testing.T) {
	dst := &event{Name: "e", Instance: &detail{Text: "x"}}
	require.NoError(t, Merge(dst, &event{Database: &detail{Text: "y"}}, []string{"database"}))
	assert.Nil(t, dst.Instance)
	assert.Equal(t, &detail{Text: "y"}, dst.Database)

	require.NoError(t, Merge(dst, &event{Instance: &detail{Text: "z"}}, []string{"instance.text"}))
	assert.Nil(t, dst.Database)
	assert.Equal(t, &detail{Text: "z"}, dst.Instance)
}

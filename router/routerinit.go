package router

import (
	"context"
	"fmt"

	"git.fiblab.net/sim/routeplanner/router/algo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// 从*.graph文本文件读入路网
func LoadGraphFromFile(name string, directed bool) (*algo.Graph, error) {
	log.Infof("read graph from %s (directed=%v)", name, directed)
	g := algo.NewGraph()
	if err := g.ReadGraphFromFile(name, directed); err != nil {
		return nil, err
	}
	return g, nil
}

// mongo中的节点与弧文档
// {class: "node", data: {id, lat, lon}}
// {class: "arc", data: {tail, head, distance, max_speed}}
type graphDoc[T any] struct {
	Class string `bson:"class"`
	Data  T      `bson:"data"`
}

type NodeDoc struct {
	ID  int     `bson:"id"`
	Lat float64 `bson:"lat"`
	Lon float64 `bson:"lon"`
}

type ArcDoc struct {
	Tail     int   `bson:"tail"`
	Head     int   `bson:"head"`
	Distance int64 `bson:"distance"`
	MaxSpeed int64 `bson:"max_speed"`
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, class string, sort bson.D) ([]T, error) {
	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}
	cur, err := coll.Find(ctx, bson.M{"class": class}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	res := make([]T, 0)
	for cur.Next(ctx) {
		var doc graphDoc[T]
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		res = append(res, doc.Data)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// 从mongo集合读入路网，节点按id排序后依次加入
func LoadGraphFromMongo(ctx context.Context, coll *mongo.Collection, directed bool) (*algo.Graph, error) {
	log.Infof("read graph from mongo %s.%s (directed=%v)", coll.Database().Name(), coll.Name(), directed)
	nodes, err := findAll[NodeDoc](ctx, coll, "node", bson.D{{Key: "data.id", Value: 1}})
	if err != nil {
		return nil, fmt.Errorf("failed to read nodes: %w", err)
	}
	arcs, err := findAll[ArcDoc](ctx, coll, "arc", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read arcs: %w", err)
	}
	return BuildGraph(nodes, arcs, directed)
}

// 由节点与弧记录构建路网
func BuildGraph(nodes []NodeDoc, arcs []ArcDoc, directed bool) (*algo.Graph, error) {
	g := algo.NewGraph()
	for _, n := range nodes {
		if err := g.AddNode(n.ID, n.Lat, n.Lon); err != nil {
			return nil, err
		}
	}
	for _, a := range arcs {
		if err := g.AddArc(a.Tail, a.Head, a.Distance, a.MaxSpeed, directed); err != nil {
			return nil, err
		}
	}
	log.Infof("%v nodes and %v arcs", g.NodeCount(), g.ArcCount())
	return g, nil
}

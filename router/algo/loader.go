package algo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// 从*.graph文件读入图
//
// 文件格式（空白分隔）：
//
//	第1行: 节点数
//	第2行: 弧数
//	节点行: node_id latitude longitude
//	弧行:   tail_node_id head_node_id distance[m] max_speed[km/h]
//
// 以#开头的行为注释，不计入行数。
// 读入失败后图处于部分填充状态，不应继续使用。
func (g *Graph) ReadGraphFromFile(name string, directed bool) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("failed to open graph file %s: %w", name, err)
	}
	defer f.Close()
	if err := g.ReadGraph(f, directed); err != nil {
		return fmt.Errorf("failed to read graph file %s: %w", name, err)
	}
	return nil
}

func (g *Graph) ReadGraph(r io.Reader, directed bool) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var (
		lineNo      int
		columnLines int
		numNodes    int
		numArcs     int
	)
	for scanner.Scan() {
		lineNo++
		columns := strings.Fields(scanner.Text())
		// 跳过空行和注释行
		if len(columns) == 0 || strings.HasPrefix(columns[0], "#") {
			continue
		}
		columnLines++
		switch {
		case columnLines == 1:
			if g.loaded || len(g.nodes) > 0 {
				return fmt.Errorf("%w: line %d: graph is already read in", ErrMalformedInput, lineNo)
			}
			n, err := parseCount(columns[0])
			if err != nil {
				return fmt.Errorf("%w: line %d: number of nodes: %v", ErrMalformedInput, lineNo, err)
			}
			numNodes = n
			g.loaded = true
		case columnLines == 2:
			n, err := parseCount(columns[0])
			if err != nil {
				return fmt.Errorf("%w: line %d: number of arcs: %v", ErrMalformedInput, lineNo, err)
			}
			numArcs = n
		case columnLines <= numNodes+2:
			if len(columns) != 3 {
				return fmt.Errorf("%w: line %d: node info line with %d != 3 columns", ErrMalformedInput, lineNo, len(columns))
			}
			id, err := strconv.Atoi(columns[0])
			if err != nil {
				return fmt.Errorf("%w: line %d: node id: %v", ErrMalformedInput, lineNo, err)
			}
			lat, err := strconv.ParseFloat(columns[1], 64)
			if err != nil {
				return fmt.Errorf("%w: line %d: latitude: %v", ErrMalformedInput, lineNo, err)
			}
			lon, err := strconv.ParseFloat(columns[2], 64)
			if err != nil {
				return fmt.Errorf("%w: line %d: longitude: %v", ErrMalformedInput, lineNo, err)
			}
			if err := g.AddNode(id, lat, lon); err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
		default:
			if len(columns) != 4 {
				return fmt.Errorf("%w: line %d: arc info line with %d != 4 columns", ErrMalformedInput, lineNo, len(columns))
			}
			var values [4]int64
			for i, c := range columns {
				v, err := strconv.ParseInt(c, 10, 64)
				if err != nil {
					return fmt.Errorf("%w: line %d: arc column %d: %v", ErrMalformedInput, lineNo, i+1, err)
				}
				values[i] = v
			}
			if err := g.AddArc(int(values[0]), int(values[1]), values[2], values[3], directed); err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("line %d: %w", lineNo, err)
	}
	if columnLines == 0 {
		return fmt.Errorf("%w: no header found", ErrMalformedInput)
	}
	if len(g.nodes) != numNodes {
		return fmt.Errorf("%w: expected %d nodes, got %d", ErrMalformedInput, numNodes, len(g.nodes))
	}
	if g.numArcs != numArcs {
		log.Warnf("graph header declares %d arcs but %d were read", numArcs, g.numArcs)
	}
	log.Infof("%v nodes and %v arcs", len(g.nodes), g.numArcs)
	return nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count %d", n)
	}
	return n, nil
}

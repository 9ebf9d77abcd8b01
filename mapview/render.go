// Copyright 2025 The GwangjuARDonMap Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mapview

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"sync"

	"github.com/mindy15963/GwangjuARDonMap/dataset"
	"github.com/mindy15963/GwangjuARDonMap/keywords"
)

type markerModel struct {
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	District string  `json:"district"`
	Purpose  string  `json:"purpose"`
	Era      string  `json:"era"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

type districtModel struct {
	Name     string                  `json:"name"`
	Color    string                  `json:"color"`
	Count    int                     `json:"count"`
	Keywords []keywords.KeywordEntry `json:"keywords"`
}

type purposeModel struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type viewModel struct {
	CenterLat float64         `json:"centerLat"`
	CenterLon float64         `json:"centerLon"`
	Zoom      int             `json:"zoom"`
	Districts []districtModel `json:"districts"`
	Purposes  []purposeModel  `json:"purposes"`
	Markers   []markerModel   `json:"markers"`
}

const mapPage = `
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<title>광주 건축 관광자원 지도</title>
	<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
	<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
	<style type="text/css">
	html, body, #map { height: 100%; margin: 0; }
	#legend {
		position: fixed; bottom: 50px; right: 50px; width: 280px;
		max-height: 600px; background-color: white; border: 2px solid grey;
		z-index: 9999; font-size: 13px; padding: 10px; border-radius: 5px;
		overflow-y: auto; font-family: sans-serif;
	}
	#legend p { margin: 3px 0; cursor: pointer; }
	#legend .heading {
		font-weight: bold; border-bottom: 2px solid #ddd;
		padding-bottom: 5px; cursor: default;
	}
	#kwPanel {
		position: fixed; bottom: 50px; right: 350px; width: 260px;
		max-height: 400px; background-color: white; border: 2px solid grey;
		z-index: 9999; font-size: 13px; padding: 10px; border-radius: 5px;
		overflow-y: auto; font-family: sans-serif; display: none;
	}
	</style>
</head>
<body>
	<div id="map"></div>
	<div id="legend"></div>
	<div id="kwPanel"></div>
	<script>
	var DATA = {{ .JSONData }};

	var map = L.map("map").setView([DATA.centerLat, DATA.centerLon], DATA.zoom);
	L.tileLayer("https://tile.openstreetmap.org/{z}/{x}/{y}.png", {
		attribution: "&copy; OpenStreetMap contributors"
	}).addTo(map);

	var colors = {};
	var layers = {};
	var overlays = {};
	DATA.districts.forEach(function (d) {
		colors[d.name] = d.color;
		layers[d.name] = L.layerGroup().addTo(map);
		overlays["[구] " + d.name] = layers[d.name];
	});

	DATA.markers.forEach(function (m) {
		var district = DATA.districts.find(function (d) { return d.name === m.district; });
		var kws = district ? district.keywords.slice(0, 5).map(function (k) { return k.token; }) : [];
		var popup = "<b>" + m.name + "</b><br>"
			+ "주소: " + m.address + "<br>"
			+ "구: " + m.district + "<br>"
			+ "목적: " + m.purpose + "<br>"
			+ "시대: " + m.era;
		if (kws.length > 0) {
			popup += "<br><br><strong>주요 키워드:</strong><br>" + kws.join(", ");
		}
		var marker = L.circleMarker([m.lat, m.lon], {
			radius: 7,
			color: colors[m.district] || "gray",
			fillOpacity: 0.8
		}).bindPopup(popup, {maxWidth: 350});
		var layer = layers[m.district];
		if (layer) {
			marker.addTo(layer);
		}
	});

	L.control.layers(null, overlays, {collapsed: false, position: "topleft"}).addTo(map);

	function showKeywords(name) {
		var district = DATA.districts.find(function (d) { return d.name === name; });
		var panel = document.getElementById("kwPanel");
		if (!district || district.keywords.length === 0) {
			panel.style.display = "none";
			return;
		}
		var html = "<p class=\"heading\">[" + name + "] 특징 키워드</p>";
		district.keywords.forEach(function (k, i) {
			html += "<p>" + (i + 1) + ". " + k.token
				+ " (" + k.count + "회, score " + k.score.toFixed(2) + ")</p>";
		});
		panel.innerHTML = html;
		panel.style.display = "block";
	}

	var legend = document.getElementById("legend");
	var html = "<p class=\"heading\">구별 (클릭하면 키워드)</p>";
	DATA.districts.forEach(function (d) {
		html += "<p onclick=\"showKeywords('" + d.name + "')\">"
			+ "<span style=\"color:" + d.color + "\">&#9679;</span> "
			+ d.name + ": " + d.count + "개</p>";
	});
	html += "<p class=\"heading\" style=\"margin-top:10px\">용도별</p>";
	DATA.purposes.forEach(function (p) {
		html += "<p>&bull; " + p.name + ": " + p.count + "개</p>";
	});
	legend.innerHTML = html;
	</script>
</body>
</html>
`

var (
	mapTemplate     *template.Template
	mapTemplateOnce sync.Once
)

const maxLegendPurposes = 10

func purposeCounts(records []dataset.Record) []purposeModel {
	counts := keywords.FreqCounter{}
	for _, rec := range records {
		if rec.Purpose != "" {
			counts.Add(rec.Purpose)
		}
	}
	ranked := keywords.RankByFrequency(counts, maxLegendPurposes)
	ans := make([]purposeModel, len(ranked))
	for i, kw := range ranked {
		ans[i] = purposeModel{Name: kw.Value, Count: kw.CountInDistrict}
	}
	return ans
}

func buildViewModel(records []dataset.Record, payload keywords.Payload, conf Conf) viewModel {
	model := viewModel{
		CenterLat: conf.CenterLat,
		CenterLon: conf.CenterLon,
		Zoom:      conf.Zoom,
		Districts: make([]districtModel, 0, len(dataset.DistrictsWithOther)),
		Purposes:  purposeCounts(records),
		Markers:   make([]markerModel, 0, len(records)),
	}
	counts := make(map[string]int)
	for _, rec := range records {
		counts[rec.District]++
		if !rec.HasCoordinates() {
			continue
		}
		lat, _ := rec.Lat.Value()
		lon, _ := rec.Lon.Value()
		model.Markers = append(model.Markers, markerModel{
			Name:     rec.PlaceName,
			Address:  rec.Address,
			District: rec.District,
			Purpose:  rec.Purpose,
			Era:      rec.Era,
			Lat:      lat,
			Lon:      lon,
		})
	}
	for _, d := range dataset.DistrictsWithOther {
		entries := payload[d]
		if entries == nil {
			entries = []keywords.KeywordEntry{}
		}
		model.Districts = append(model.Districts, districtModel{
			Name:     d,
			Color:    districtColors[d],
			Count:    counts[d],
			Keywords: entries,
		})
	}
	return model
}

// Render writes the interactive map page: one toggleable layer per
// district, colored markers with facility popups and a legend whose
// district rows open the per-district keyword panel.
func Render(w io.Writer, records []dataset.Record, payload keywords.Payload, conf *Conf) error {
	mapTemplateOnce.Do(func() {
		mapTemplate = template.Must(template.New("map").Parse(mapPage))
	})
	model := buildViewModel(records, payload, conf.WithDefaults())
	rawModel, err := json.Marshal(model)
	if err != nil {
		return fmt.Errorf("failed to render map: %w", err)
	}
	err = mapTemplate.Execute(w, map[string]any{
		"JSONData": template.JS(rawModel),
	})
	if err != nil {
		return fmt.Errorf("failed to render map: %w", err)
	}
	return nil
}

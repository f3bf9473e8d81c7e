package catalog

// Default builds the production catalog. Content is fixed at deploy
// time; editing it means shipping a new build.
func Default() *Catalog {
	return newCatalog([]Entry{
		{
			Slug: "monocrystalline",
			Panel: PanelType{
				Name:        "Monocrystalline Solar Panels",
				Icon:        "images/monocrystalline.jpg",
				Description: "The most efficient and space-saving solar panel technology available today.",
				HowItWorks: `Monocrystalline solar panels are made from a single, continuous crystal structure of silicon. The manufacturing process starts with a silicon seed crystal placed in a vat of molten silicon. As the seed is slowly pulled up, the molten silicon forms around it, creating a single crystal ingot called a boule. This boule is then sliced into thin wafers that form the solar cells.

The single-crystal structure allows electrons to flow more freely, resulting in higher efficiency. The cells appear uniformly dark and have rounded edges due to the cylindrical shape of the silicon ingot.`,
				Advantages: []string{
					"Highest efficiency rates (typically 17-22%)",
					"Space-efficient - requires less roof space for the same power output",
					"Longest lifespan (25-30+ years with warranties)",
					"Better performance in low-light conditions",
					"Most aesthetically pleasing with uniform black appearance",
					"Better heat tolerance compared to polycrystalline",
				},
				EfficiencyRange: "17% - 22%",
				IdealUseCases: []string{
					"Residential rooftops with limited space",
					"High-end commercial installations",
					"Areas with variable weather conditions",
					"Properties where aesthetics matter",
					"Long-term investments prioritizing efficiency",
				},
				Color: "#3D5C2E",
			},
		},
		{
			Slug: "polycrystalline",
			Panel: PanelType{
				Name:        "Polycrystalline Solar Panels",
				Icon:        "images/polycrystalline.jpg",
				Description: "A cost-effective solution offering good efficiency at a lower price point.",
				HowItWorks: `Polycrystalline solar panels are made from multiple silicon crystal fragments melted together. Instead of using a single crystal seed, the molten silicon is simply poured into a square mold and allowed to cool. This creates multiple crystals within each cell.

The manufacturing process is simpler and produces less waste than monocrystalline production. The resulting cells have a distinctive blue, speckled appearance due to the multiple crystal boundaries reflecting light differently. While slightly less efficient, they offer excellent value for money.`,
				Advantages: []string{
					"Lower manufacturing cost (10-20% cheaper than mono)",
					"Good efficiency for the price (15-17%)",
					"Simpler manufacturing process with less silicon waste",
					"Proven technology with reliable performance",
					"Good option for larger installation areas",
					"Environmental benefit from less production waste",
				},
				EfficiencyRange: "15% - 17%",
				IdealUseCases: []string{
					"Budget-conscious residential installations",
					"Large-scale solar farms where space isn't limited",
					"Commercial buildings with ample roof space",
					"Agricultural applications",
					"Cost-effective grid-tied systems",
				},
				Color: "#3D5C2E",
			},
		},
		{
			Slug: "thin_film",
			Panel: PanelType{
				Name:        "Thin-Film Solar Panels",
				Icon:        "images/Thin_film.jpeg",
				Description: "Flexible and lightweight panels perfect for unique applications and surfaces.",
				HowItWorks: `Thin-film solar panels are made by depositing one or more thin layers of photovoltaic material onto a substrate like glass, plastic, or metal. The layers are about 300-350 times thinner than standard silicon wafers.

Common types include Cadmium Telluride (CdTe), Amorphous Silicon (a-Si), and Copper Indium Gallium Selenide (CIGS). Each type has different characteristics, but all share the benefits of flexibility and lightweight construction. The thin layers absorb sunlight and convert it to electricity through the photovoltaic effect.`,
				Advantages: []string{
					"Lightweight and flexible installation options",
					"Works well in high temperatures and partial shading",
					"Lower carbon footprint in manufacturing",
					"Uniform appearance for aesthetic installations",
					"Can be integrated into building materials",
					"Better performance in diffuse light conditions",
				},
				EfficiencyRange: "10% - 13%",
				IdealUseCases: []string{
					"Curved or irregular surfaces",
					"Portable solar applications",
					"Building-integrated photovoltaics (BIPV)",
					"Large commercial rooftops",
					"Hot climate installations",
					"Carports and canopies",
				},
				Color: "#3D5C2E",
			},
		},
		{
			Slug: "bipv",
			Panel: PanelType{
				Name:        "Building-Integrated Photovoltaics (BIPV)",
				Icon:        "images/BIPV.jpg",
				Description: "Seamlessly integrating solar technology into building architecture.",
				HowItWorks: `Building-Integrated Photovoltaics (BIPV) replaces conventional building materials with photovoltaic materials that generate electricity. Unlike traditional solar panels mounted on top of existing structures, BIPV products serve as both the outer layer of a structure and generate electricity.

BIPV can take many forms: solar roof tiles/shingles, solar facades, solar glass windows, solar skylights, and solar cladding. They use various cell technologies (crystalline silicon, thin-film) depending on the application. The key innovation is the dual functionality - providing weather protection while harvesting solar energy.`,
				Advantages: []string{
					"Replaces conventional building materials (cost offset)",
					"Aesthetically superior - blends with architecture",
					"Dual functionality (protection + power generation)",
					"No additional mounting systems required",
					"Increases property value significantly",
					"Multiple application options (roof, facade, windows)",
				},
				EfficiencyRange: "10% - 20%",
				IdealUseCases: []string{
					"New construction projects",
					"Historic building renovations",
					"Commercial buildings prioritizing aesthetics",
					"Green building certifications (LEED, BREEAM)",
					"Urban environments with design restrictions",
					"Architectural showcase projects",
				},
				Color: "#3D5C2E",
			},
		},
	})
}

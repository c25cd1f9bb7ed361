package tass

// Reference values for the synthetic series of testdata/series, printed by
// testdata/golden_reference.py. The series come from testdata/gen_series.py.
var goldenStates = []struct {
	jd   float64
	sat  Satellite
	el   Elements
	a    float64
	R, V []float64
}{
	{2451545.0, Mimas, Elements{4.1304798844470004e-06, 2.4162345398031775, 0.00983052772044713, 0.0018712218521221417, -0.00011967601845107268, 0.004028156051827223}, 0.0012391508086464287, []float64{0.0008003869623026729, -0.0008734476159802789, 0.0003885763755026915}, []float64{0.006304553155348606, 0.004408359139470171, -0.002869472777505124}},
	{2451545.0, Enceladus, Elements{6.108224154681748e-06, 2.88655288483033, 0.009087261519462335, 0.009210212292646925, 0.0026985781749107153, 0.004237211170149604}, 0.0015903271367872945, []float64{0.0014736935677884925, -0.0005965206030429141, 0.0001870706354678516}, []float64{0.0028463212350826436, 0.0057721992214900325, -0.003326358769000631}},
	{2451545.0, Tethys, Elements{1.9686590106523815e-06, -0.7453434163000594, 0.002749663127119327, 0.015651783808785662, 0.005523380488923775, 0.0023663611332036772}, 0.0019690906724689574, []float64{-0.0011795111644816478, 0.0014506332615495808, -0.0006708578658565265}, []float64{-0.005147977251436019, -0.0032656237584650083, 0.0022447159251933833}},
	{2451545.0, Dione, Elements{-3.257250311971183e-06, 2.9958187853182565, -0.007876943853543884, 0.017161158024816794, 0.006857576419662461, -0.0013608248054215635}, 0.002522341668343597, []float64{0.002393913596815924, -0.0006980663258641275, 0.00013070172329331437}, []float64{0.0016669084017385412, 0.004857591857446762, -0.0027991807287351318}},
	{2451545.0, Rhea, Elements{-1.3745680110322798e-06, -2.7090636410488713, -0.018821881933887903, 0.011225495416188504, 0.005570812577291677, -0.005708983560779819}, 0.003522857330566796, []float64{0.003300067550180948, 0.0007770393749519914, -0.00078676082934636}, []float64{-0.0014117207728274737, 0.004254613752463914, -0.0021210205069466}},
	{2451545.0, Titan, Elements{5.809742003712054e-06, -1.5036459109214846, -0.02492772919389996, -0.0015748742098073566, 0.001526890805510794, -0.008839179789145607}, 0.008167431095807347, []float64{0.0003623453180287536, 0.00721438580016498, -0.003824266184561067}, []float64{-0.0031910552730662553, 0.0003518600479543656, 0.00018981993120970996}},
	{2451545.0, Hyperion, Elements{0.0012908722667192122, 3.1092862395744283, 0.03272021106616329, 0.10120339793736337, -0.012622456146944676, 0.0031102412797817712}, 0.009889869527893714, []float64{0.010250102126180565, -0.0003427142044931254, -0.0006936716718816319}, []float64{0.0002772516831616899, 0.002499178663195937, -0.0012574075719065268}},
	{2451545.0, Iapetus, Elements{-3.4691936168840134e-06, -0.3648912465486589, -0.009497365716598512, -0.029615127815588782, -0.00942869200022625, -0.005640657115946711}, 0.023800848400821174, []float64{-0.02115221370598957, 0.010455052789794918, -0.002988241463361473}, []float64{-0.0008959986510462023, -0.0014465107271878534, 0.0008145328998398985}},
	{2444240.0, Mimas, Elements{6.237574484096506e-06, 0.4998037873247974, 0.010017156192578704, 8.725829700072167e-05, -0.0016436818842960066, 0.0036587062512412546}, 0.00123914906798469, []float64{-0.0011513175897099302, -0.00032940161701169255, 0.00027297162865341253}, []float64{0.0027925591252615568, -0.007061374707028941, 0.003435841657745817}},
	{2444240.0, Enceladus, Elements{7.828288271532633e-06, 1.201478815688668, 0.01199079719066165, 0.005149746274941899, -0.0011151408743903615, 0.004890789484615482}, 0.001590325313157953, []float64{-0.0007701427355272482, -0.0011901646342573832, 0.0006884683757868193}, []float64{0.006362059372435402, -0.0034721094170232685, 0.0012730162399373387}},
	{2444240.0, Tethys, Elements{9.160800200909465e-06, 1.9020474770680005, 0.011164244539021382, 0.011565072977910354, -0.0001543396371755924, 0.006019004661499933}, 0.0019690812312253745, []float64{0.0003846885541046029, -0.00170948345780806, 0.0008672450505567216}, []float64{0.006471237907888243, 0.0008475198101573292, -0.0009852691792382078}},
	{2444240.0, Dione, Elements{1.0209657468847983e-05, 2.599566713781721, 0.006901956185048592, 0.01779606053787648, 0.0012106809921907707, 0.006919659279534439}, 0.002522319023095544, []float64{0.0019730005600347685, -0.0014391890419073617, 0.0006009088787868824}, []float64{0.0036621657403951213, 0.003851572632668545, -0.002341104185187307}},
	{2444240.0, Rhea, Elements{1.0941667528007793e-05, -2.9853051160260224, -0.0006250790091751849, 0.02207789326623257, 0.002919809239540117, 0.00747778859647367}, 0.0035228284052634755, []float64{0.003522683305614385, 1.8798447000421108e-06, -0.00028806280960128576}, []float64{-8.307239808095114e-05, 0.004309272078386842, -0.0022964028205660334}},
	{2444240.0, Titan, Elements{1.1338736752717479e-05, -2.2862185365181817, -0.010386250990688984, 0.022819595585503782, 0.004883687431128365, 0.007594695759608395}, 0.008167400990998528, []float64{0.0060832643601481, 0.0046891519964765765, -0.003029444922038876}, []float64{-0.0020866592663347488, 0.0021832409486779196, -0.0010065671357353803}},
	{2444240.0, Hyperion, Elements{-0.0014470622068348505, 0.9925856989923787, -0.013953890304884316, 0.10633221335088944, -0.012815793607373015, 0.0021806958094188504}, 0.009907939313100196, []float64{-0.007131413693532964, -0.004883084787607631, 0.003021362496328143}, []float64{0.002143071754216075, -0.0021416947565962943, 0.0008711090925876846}},
	{2444240.0, Iapetus, Elements{1.1048885456673866e-05, -0.881999876108253, -0.029191875685667546, 0.010471973021245896, 0.009099567326450097, 0.0062326127612408406}, 0.023800618041076256, []float64{-0.012933731840410969, 0.018627372971252266, -0.009114462024438318}, []float64{-0.0015656184876492874, -0.00077469352685958, 0.0005622783622552551}},
	{2460000.5, Mimas, Elements{-3.5426215677992393e-06, 3.0189127112264984, 0.008998081899057608, 0.004097950117742756, 0.0017094823691811978, 0.003639701724675754}, 0.0012391571474140244, []float64{0.001199355041027833, -0.0003429408602216652, 7.433597909277186e-05}, []float64{0.0022480623687549635, 0.006875830476992145, -0.0038441075594959706}},
	{2460000.5, Enceladus, Elements{-1.992813335867963e-06, 2.3562760011381414, 0.0038532725413195283, 0.01230456557026462, 0.005014517515225084, 0.000379910433858092}, 0.0015903357256593189, []float64{0.0009503494180345228, -0.0011498309316734928, 0.0005238524833254564}, []float64{0.005878204498445904, 0.003598859314349549, -0.002510189923562447}},
	{2460000.5, Tethys, Elements{-1.5355478067438543e-06, -0.6384321214517783, -0.008086647845504533, 0.01377113551994078, 0.0033253846497114602, -0.005002605948542183}, 0.0019690952725406404, []float64{-0.0013685295885355949, 0.0013429365764692992, -0.000562245471701021}, []float64{-0.004636751413684213, -0.0037408597416624862, 0.002492055097789845}},
	{2460000.5, Dione, Elements{-5.009346359519867e-07, -0.6066029163882618, -0.01864555934684294, 0.003980416572308696, -0.003211650393001255, -0.006194927141479096}, 0.0025223370334258926, []float64{-0.001861231329918902, 0.001646778825944527, -0.00064231680289459}, []float64{-0.0039088473860808244, -0.0034888205222832905, 0.0022174842655712035}},
	{2460000.5, Rhea, Elements{-2.916962797385416e-06, 1.8141011923389456, -0.018043116176604816, -0.012793425875948637, -0.007968925266588605, -0.0002026851878524406}, 0.003522860953000951, []float64{0.00013989158490165167, -0.0031754522609780665, 0.001587159933429355}, []float64{0.004832771614443809, 7.815193901388147e-05, -0.0004917278882792702}},
	{2460000.5, Titan, Elements{-8.50871087796793e-06, 0.2359555427052058, -0.0031625233617592133, -0.024894138586209827, -0.004555696022093404, 0.0077552957954971835}, 0.008167509059602871, []float64{-0.008165772838979185, -0.0006205671890153366, 0.0009530621346451405}, []float64{0.00030776389132497657, -0.0028299041594565355, 0.0014355579062758016}},
	{2460000.5, Hyperion, Elements{-0.0015868238697469826, -0.6337785710605459, 0.06149745492152194, 0.08031239944207746, -0.012314687405038837, 0.004165149951223586}, 0.00990886392547675, []float64{-0.005394127893751753, 0.007703459499615277, -0.0033706988999001185}, []float64{-0.002259580078673493, -0.0015453242126092287, 0.0009501862102958716}},
	{2460000.5, Iapetus, Elements{-1.8465950980883464e-05, -2.972773782164438, 0.03089966278156874, -0.001051280014289049, 0.011025825484080801, -0.00021854166235332116}, 0.023801086361652925, []float64{0.02442443528354629, -0.0011231575920601104, -0.0018844143049359665}, []float64{-5.629410255247068e-06, 0.0016012089661203708, -0.0008834010882300437}},
}
